package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/db"
	"github.com/jonathan/resume-evaluator/internal/evaluator"
)

// fakeDB is an in-memory DBClient. Setting failAll makes every call error,
// which exercises the degraded-storage paths.
type fakeDB struct {
	users       map[uuid.UUID]*db.User
	evaluations []db.Evaluation
	failAll     bool
	failSave    bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) addUser(email, name, role string) *db.User {
	user := &db.User{ID: uuid.New(), Email: email, Name: name, Role: role}
	f.users[user.ID] = user
	return user
}

func (f *fakeDB) CreateUser(ctx context.Context, email, name, role string) (uuid.UUID, error) {
	if f.failAll {
		return uuid.Nil, fmt.Errorf("storage unavailable")
	}
	user := f.addUser(email, name, role)
	return user.ID, nil
}

func (f *fakeDB) GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error) {
	if f.failAll {
		return nil, fmt.Errorf("storage unavailable")
	}
	return f.users[userID], nil
}

func (f *fakeDB) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	if f.failAll {
		return nil, fmt.Errorf("storage unavailable")
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if f.failAll {
		return false, fmt.Errorf("storage unavailable")
	}
	user, _ := f.GetUserByEmail(ctx, email)
	return user != nil, nil
}

func (f *fakeDB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	if f.failAll {
		return fmt.Errorf("storage unavailable")
	}
	user, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found")
	}
	user.PasswordHash = passwordHash
	user.PasswordSet = true
	return nil
}

func (f *fakeDB) CountUsers(ctx context.Context) (int64, error) {
	if f.failAll {
		return 0, fmt.Errorf("storage unavailable")
	}
	return int64(len(f.users)), nil
}

func (f *fakeDB) SaveEvaluation(ctx context.Context, userEmail string, finalScore int, missingSkills []string) (uuid.UUID, error) {
	if f.failAll || f.failSave {
		return uuid.Nil, fmt.Errorf("storage unavailable")
	}
	eval := db.Evaluation{
		ID:            uuid.New(),
		UserEmail:     userEmail,
		FinalScore:    finalScore,
		MissingSkills: missingSkills,
	}
	f.evaluations = append(f.evaluations, eval)
	return eval.ID, nil
}

func (f *fakeDB) AverageScore(ctx context.Context) (float64, error) {
	if f.failAll {
		return 0, fmt.Errorf("storage unavailable")
	}
	if len(f.evaluations) == 0 {
		return 0, nil
	}
	var sum int
	for _, eval := range f.evaluations {
		sum += eval.FinalScore
	}
	return float64(sum) / float64(len(f.evaluations)), nil
}

func (f *fakeDB) ListMissingSkills(ctx context.Context) ([][]string, error) {
	if f.failAll {
		return nil, fmt.Errorf("storage unavailable")
	}
	lists := make([][]string, 0, len(f.evaluations))
	for _, eval := range f.evaluations {
		lists = append(lists, eval.MissingSkills)
	}
	return lists, nil
}

// newTestServer builds a server around a fakeDB, skipping the network and
// database setup in New.
func newTestServer(t *testing.T, fake *fakeDB) *Server {
	t.Helper()

	eval, err := evaluator.New()
	require.NoError(t, err)

	passwordConfig := &config.PasswordConfig{BcryptCost: 4}
	jwtService := newJWTService("test-secret")
	userService := NewUserService(fake, passwordConfig)

	return &Server{
		db:          fake,
		evaluator:   eval,
		frontendURL: "http://localhost:3000",
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
	}
}
