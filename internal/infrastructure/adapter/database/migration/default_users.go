package migration

import (
	"context"
	"errors"

	errs "github.com/astrodash/astro-api/internal/domain/error"
	userUseCase "github.com/astrodash/astro-api/internal/domain/usecase/user"
)

// Demo users seeded into fresh databases so the admin dashboard and the
// report pipeline have something to work with out of the box.
var defaultUsers = []userUseCase.CreateInput{
	{
		Name:        "Ananya Sharma",
		Email:       "ananya.sharma@example.com",
		PhoneNumber: "9876543210",
		CountryCode: "+91",
		Package:     "Premium",
		City:        "Mumbai",
		Country:     "India",
		DateOfBirth: "1992-04-17",
		TimeOfBirth: "06:45",
		BirthPlace:  "Mumbai, Maharashtra",
		Latitude:    19.0760,
		Longitude:   72.8777,
		Balance:     "1000.00",
	},
	{
		Name:        "Rohan Verma",
		Email:       "rohan.verma@example.com",
		PhoneNumber: "9812345678",
		CountryCode: "+91",
		City:        "Delhi",
		Country:     "India",
		DateOfBirth: "1988-11-02",
		TimeOfBirth: "23:10",
		BirthPlace:  "New Delhi",
		Latitude:    28.6139,
		Longitude:   77.2090,
		Balance:     "500.00",
	},
	{
		Name:        "Priya Nair",
		Email:       "priya.nair@example.com",
		PhoneNumber: "9900112233",
		CountryCode: "+91",
		City:        "Kochi",
		Country:     "India",
		DateOfBirth: "1995-07-23",
		TimeOfBirth: "12:30",
		BirthPlace:  "Kochi, Kerala",
		Latitude:    9.9312,
		Longitude:   76.2673,
		Balance:     "250.00",
	},
}

// CreateDefaultUsers creates the default users with predefined balances.
// Users that already exist are left untouched.
func CreateDefaultUsers(ctx context.Context, userService *userUseCase.UseCase) error {
	for _, in := range defaultUsers {
		if _, err := userService.Create(ctx, in); err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				continue
			}
			return err
		}
	}
	return nil
}
