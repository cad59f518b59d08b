package media

import (
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"
	goerrors "github.com/goliatone/go-errors"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"tourcab/idgen"
	"tourcab/utils"
)

const (
	thumbWidth     = 300
	maxUploadBytes = 20 << 20
	PublicPrefix   = "/static/uploads"
)

// Kinds that accept image uploads.
var Kinds = map[string]bool{
	"tours":     true,
	"cars":      true,
	"locations": true,
	"posts":     true,
}

// Upload is one stored image and its thumbnail.
type Upload struct {
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
}

// Uploader writes images under Dir/<kind>/ with a thumbnail in
// Dir/<kind>/thumb/.
type Uploader struct {
	Dir    string
	IDs    idgen.Strings
	Logger *zap.SugaredLogger
}

func badImage(msg string) error {
	return goerrors.New(msg, goerrors.CategoryBadInput).WithTextCode("BAD_IMAGE")
}

// Save decodes file, stores it as JPEG and writes a thumbnail thumbWidth
// pixels wide.
func (u *Uploader) Save(kind string, file *multipart.FileHeader) (Upload, error) {
	if !Kinds[kind] {
		return Upload{}, goerrors.New("unknown media kind "+kind, goerrors.CategoryNotFound).WithTextCode("NOT_FOUND")
	}
	if !utils.IsSupportedImage(file) {
		return Upload{}, badImage("unsupported image type")
	}

	src, err := file.Open()
	if err != nil {
		return Upload{}, goerrors.Wrap(err, goerrors.CategoryBadInput, "open image")
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return Upload{}, badImage("image could not be decoded")
	}

	fileName := u.IDs.NewID() + ".jpg"
	dir := filepath.Join(u.Dir, kind)
	thumbDir := filepath.Join(dir, "thumb")
	if err := utils.EnsureDir(thumbDir); err != nil {
		return Upload{}, goerrors.Wrap(err, goerrors.CategoryInternal, "create upload directory")
	}

	if err := imaging.Save(img, filepath.Join(dir, fileName)); err != nil {
		return Upload{}, goerrors.Wrap(err, goerrors.CategoryInternal, "save original image")
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return Upload{}, goerrors.Wrap(err, goerrors.CategoryInternal, "save thumbnail")
	}

	return Upload{
		URL:      path.Join(PublicPrefix, kind, fileName),
		ThumbURL: path.Join(PublicPrefix, kind, "thumb", fileName),
	}, nil
}

// POST /api/admin/media/:kind
//
// Multipart form with one or more "image" files.
func (u *Uploader) Handle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind := ps.ByName("kind")
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.WriteError(w, badImage("unable to parse upload"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.WriteError(w, badImage("no image in form field \"image\""))
		return
	}

	uploads := make([]Upload, 0, len(files))
	for _, f := range files {
		up, err := u.Save(kind, f)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		uploads = append(uploads, up)
	}
	if u.Logger != nil {
		u.Logger.Infow("media uploaded", "kind", kind, "count", len(uploads))
	}
	utils.RespondWithJSON(w, http.StatusCreated, uploads)
}
