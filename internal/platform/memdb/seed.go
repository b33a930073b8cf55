package memdb

// SeedBooks は初期カタログ（5冊）
func SeedBooks() []Book {
	return []Book{
		{ID: "1", Title: "1984", Author: "Джордж Оруэлл", Category: "Антиутопия", PublicationYear: 1949, Price: 450, Available: true, RentType: RentTypePurchase},
		{ID: "2", Title: "Мастер и Маргарита", Author: "Михаил Булгаков", Category: "Роман", PublicationYear: 1967, Price: 520, Available: true, RentType: RentTypeRent},
		{ID: "3", Title: "Преступление и наказание", Author: "Фёдор Достоевский", Category: "Классика", PublicationYear: 1866, Price: 380, Available: false, RentType: RentTypePurchase},
		{ID: "4", Title: "Гарри Поттер и философский камень", Author: "Дж. К. Роулинг", Category: "Фэнтези", PublicationYear: 1997, Price: 420, Available: true, RentType: RentTypeRent},
		{ID: "5", Title: "Война и мир", Author: "Лев Толстой", Category: "Классика", PublicationYear: 1869, Price: 650, Available: true, RentType: RentTypePurchase},
	}
}

func DefaultRentalPeriods() []RentalPeriod {
	return []RentalPeriod{
		{ID: "1", Name: "2 недели", Duration: 14, Multiplier: 0.3},
		{ID: "2", Name: "1 месяц", Duration: 30, Multiplier: 0.5},
		{ID: "3", Name: "3 месяца", Duration: 90, Multiplier: 1.2},
	}
}

func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		Enabled:       true,
		DaysBefore:    3,
		EmailTemplate: "Уважаемый читатель, срок аренды книги истекает через 5 дней.",
	}
}
