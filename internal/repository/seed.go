package repository

import (
	"context"
	"fmt"

	"activity-signup-service/internal/model"
)

// defaultCatalog — стартовый набор активностей, который сервис
// разворачивает в пустой базе при первом запуске.
var defaultCatalog = model.ActivityList{
	{
		Name: "Chess Club",
		Activity: model.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	},
	{
		Name: "Programming Class",
		Activity: model.Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
	},
	{
		Name: "Gym Class",
		Activity: model.Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	},
}

// SeedDefaults наполняет пустой каталог стартовыми активностями.
// Если в базе уже есть хотя бы одна активность, ничего не делает.
// Предполагается вызов внутри транзакции (см. TransactionManager).
func (r *ActivityRepo) SeedDefaults(ctx context.Context) error {
	n, err := r.CountActivities(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, entry := range defaultCatalog {
		id, err := r.CreateActivity(ctx, entry.Name, entry.Activity)
		if err != nil {
			return fmt.Errorf("seed activity %s: %w", entry.Name, err)
		}
		for _, email := range entry.Activity.Participants {
			if err := r.AddParticipant(ctx, id, email); err != nil {
				return fmt.Errorf("seed participant %s: %w", email, err)
			}
		}
	}
	return nil
}
