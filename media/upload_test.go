package media

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"tourcab/idgen"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, path, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="ajanta.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newRouter(dir string) *httprouter.Router {
	u := &Uploader{Dir: dir, IDs: idgen.Prefixed{Prefix: "img", Counter: idgen.NewCounter(1)}}
	router := httprouter.New()
	router.POST("/api/admin/media/:kind", u.Handle)
	return router
}

func TestUploadWritesOriginalAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	router := newRouter(dir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/api/admin/media/tours", "image/png", pngBytes(t, 600, 400)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body)
	}

	var ups []Upload
	if err := json.Unmarshal(rec.Body.Bytes(), &ups); err != nil {
		t.Fatal(err)
	}
	if len(ups) != 1 || ups[0].URL != "/static/uploads/tours/img-1.jpg" || ups[0].ThumbURL != "/static/uploads/tours/thumb/img-1.jpg" {
		t.Fatalf("uploads = %+v", ups)
	}

	orig, err := imaging.Open(filepath.Join(dir, "tours", "img-1.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if b := orig.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Errorf("original = %v", b)
	}
	thumb, err := imaging.Open(filepath.Join(dir, "tours", "thumb", "img-1.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if b := thumb.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("thumbnail = %v", b)
	}
}

func TestUploadRejects(t *testing.T) {
	router := newRouter(t.TempDir())
	cases := []struct {
		name string
		req  *http.Request
		code int
	}{
		{"unknown kind", uploadRequest(t, "/api/admin/media/users", "image/png", pngBytes(t, 10, 10)), http.StatusNotFound},
		{"wrong type", uploadRequest(t, "/api/admin/media/cars", "text/plain", []byte("hello")), http.StatusBadRequest},
		{"undecodable", uploadRequest(t, "/api/admin/media/cars", "image/png", []byte("not a png")), http.StatusBadRequest},
		{"no form", httptest.NewRequest(http.MethodPost, "/api/admin/media/cars", strings.NewReader("x")), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tc.req)
			if rec.Code != tc.code {
				t.Errorf("status = %d, want %d", rec.Code, tc.code)
			}
		})
	}
}
