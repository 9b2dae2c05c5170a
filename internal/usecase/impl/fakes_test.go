package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"apothecary/internal/domain/entity"
	"apothecary/internal/domain/repository"
	"apothecary/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	findOut *entity.User
	findErr error

	createErr   error
	createdUser *entity.User
	createdName string
}

func (f *fakeUserRepo) FindByName(_ context.Context, name string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = "user-1"
	f.createdUser = user
	f.createdName = user.Name
	return nil
}

type fakeHasher struct {
	hashOut  string
	hashErr  error
	checkOut bool

	hashedPassword string
}

func (f *fakeHasher) Hash(password string) (string, error) {
	f.hashedPassword = password
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return f.hashOut, nil
}

func (f *fakeHasher) Check(_, _ string) bool {
	return f.checkOut
}

type fakeTokenService struct {
	token  string
	genErr error
}

func (f *fakeTokenService) GenerateToken(_, _ string) (string, error) {
	if f.genErr != nil {
		return "", f.genErr
	}
	return f.token, nil
}

func (f *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	panic("not used in these tests")
}

func (f *fakeTokenService) TokenDuration() time.Duration {
	return 24 * time.Hour
}

type fakePotionRepo struct {
	potions []*entity.Potion
	names   []string
	findErr error

	insertErr  error
	replaceErr error
	deleteErr  error

	aggregateRows  []bson.M
	aggregateErr   error
	aggregateCalls int
	lastPipeline   mongo.Pipeline
}

func (f *fakePotionRepo) FindAll(_ context.Context) ([]*entity.Potion, error) {
	return f.potions, f.findErr
}

func (f *fakePotionRepo) FindNames(_ context.Context) ([]string, error) {
	return f.names, f.findErr
}

func (f *fakePotionRepo) FindByVendor(_ context.Context, _ string) ([]*entity.Potion, error) {
	return f.potions, f.findErr
}

func (f *fakePotionRepo) FindByPriceRange(_ context.Context, _, _ float64) ([]*entity.Potion, error) {
	return f.potions, f.findErr
}

func (f *fakePotionRepo) FindByID(_ context.Context, _ string) (*entity.Potion, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if len(f.potions) == 0 {
		return nil, repository.ErrPotionNotFound
	}
	return f.potions[0], nil
}

func (f *fakePotionRepo) Insert(_ context.Context, potion *entity.Potion) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	potion.ID = "potion-1"
	return nil
}

func (f *fakePotionRepo) Replace(_ context.Context, _ string, _ *entity.Potion) error {
	return f.replaceErr
}

func (f *fakePotionRepo) Delete(_ context.Context, _ string) error {
	return f.deleteErr
}

func (f *fakePotionRepo) Aggregate(_ context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	f.aggregateCalls++
	f.lastPipeline = pipeline
	if f.aggregateErr != nil {
		return nil, f.aggregateErr
	}
	return f.aggregateRows, nil
}
