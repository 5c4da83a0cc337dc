package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afishabot/discovery/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "username", "city")
	sb.From("event_user")
	sb.Where(sb.Equal("username", username))

	query, args := sb.Build()

	var user domain.User
	var city string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Username, &city)
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user by username: %w", scanRowsErr(err))
	}
	user.City = domain.City(city)

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, username string, city domain.City) (domain.User, error) {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("event_user")
	ib.Cols("username", "city")
	ib.Values(username, string(city))

	query, args := ib.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("resolving created user id: %w", err)
	}

	return domain.User{ID: id, Username: username, City: city}, nil
}

func (r *Repository) GetOrCreateUser(ctx context.Context, username string) (domain.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	return r.CreateUser(ctx, username, domain.DefaultCity)
}

func (r *Repository) UpdateUserCity(ctx context.Context, username string, city domain.City) error {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("event_user")
	ub.Set(ub.Assign("city", string(city)))
	ub.Where(ub.Equal("username", username))

	query, args := ub.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user city: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking user city update: %w", err)
	}
	if affected == 0 {
		// The update is also a no-op when the city is unchanged, so
		// confirm the user actually exists before reporting not found.
		if _, err := r.GetUserByUsername(ctx, username); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) CreateFeedback(ctx context.Context, userID int64, message string) error {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("event_feedback")
	ib.Cols("user_id", "message", "created")
	ib.Values(userID, message, time.Now().UTC())

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating feedback: %w", err)
	}

	return nil
}
