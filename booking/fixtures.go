package booking

import "tourcab/models"

func Fixtures() []models.Booking {
	return []models.Booking{
		{ID: "bk-1001", TourID: "tour-ajanta", TourTitle: "Ajanta Caves Day Tour", CustomerName: "Priya Deshmukh", CustomerEmail: "priya.d@example.com", CustomerPhone: "+91 98220 11223", Date: "2024-02-10", Guests: 2, TotalPrice: 7000, Status: models.BookingConfirmed},
		{ID: "bk-1002", TourID: "tour-ellora", TourTitle: "Ellora Caves & Grishneshwar Temple", CustomerName: "Rahul Kulkarni", CustomerEmail: "rahul.k@example.com", CustomerPhone: "+91 98505 44556", Date: "2024-02-14", Guests: 4, TotalPrice: 8800, Status: models.BookingPending},
		{ID: "bk-1003", TourID: "tour-city", TourTitle: "Aurangabad City Heritage Tour", CustomerName: "Anjali Patil", CustomerEmail: "anjali.p@example.com", CustomerPhone: "+91 97640 77889", Date: "2024-01-28", Guests: 3, TotalPrice: 4500, Status: models.BookingCompleted},
		{ID: "bk-1004", TourID: "tour-daulatabad", TourTitle: "Daulatabad Fort Trek", CustomerName: "Sameer Shaikh", CustomerEmail: "sameer.s@example.com", CustomerPhone: "+91 90110 22334", Date: "2024-02-20", Guests: 2, TotalPrice: 3600, Status: models.BookingCancelled},
		{ID: "bk-1005", TourID: "tour-ajanta", TourTitle: "Ajanta Caves Day Tour", CustomerName: "Meera Joshi", CustomerEmail: "meera.j@example.com", CustomerPhone: "+91 94220 55667", Date: "2024-03-02", Guests: 5, TotalPrice: 17500, Status: models.BookingPending},
	}
}
