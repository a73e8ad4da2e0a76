package gormdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/dates"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
)

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mar1 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenSQLite(":memory:", logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func seedCat(t *testing.T, repo *CatsRepo, name string, sex cats.Sex, created time.Time) cats.Cat {
	t.Helper()
	c := cats.Cat{
		Name:      name,
		Sex:       sex,
		BirthDate: time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC),
		Photo:     "/media/" + name + ".jpg",
		Care:      cats.Care{Neutered: true, Vaccinated: true},
		Housing:   cats.Housing{Apartment: true},
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, repo.Create(context.Background(), &c))
	require.NotZero(t, c.ID)
	return c
}

func seedAdoptionApplication(t *testing.T, repo *AdoptionsRepo, catID uint, name string) adoptions.Application {
	t.Helper()
	a := adoptions.Application{
		CatID:     catID,
		Answers:   adoptions.Answers{Name: name, Email: "ana@example.com", Age: 30},
		CreatedAt: jan1,
	}
	require.NoError(t, repo.CreateApplication(context.Background(), &a))
	return a
}

func seedFosterApplication(t *testing.T, repo *FosterCareRepo, catID *uint, name string) fostercare.Application {
	t.Helper()
	a := fostercare.Application{
		CatID: catID,
		Answers: fostercare.Answers{
			Name: name, Email: "lar@example.com", Phone: "11988887777",
			Street: "Rua A", Number: "5", District: "Centro", City: "Santos", CEP: "11000-000",
			Structure: fostercare.ChoiceYes, Costs: fostercare.ChoiceNo, Duration: fostercare.DurationOneMonth,
		},
		AvailableFrom: jan1,
		CreatedAt:     jan1,
	}
	require.NoError(t, repo.CreateApplication(context.Background(), &a))
	return a
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

// -------------------------
// Gatos
// -------------------------

func TestCatsRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatsRepo(db)
	ctx := context.Background()

	c := seedCat(t, repo, "Mimi", cats.SexFemale, jan1)
	for _, model := range []any{&careRecord{}, &temperamentRecord{}, &sociabilityRecord{}, &housingRecord{}} {
		assert.Equal(t, int64(1), countRows(t, db, model, "cat_id = ?", c.ID))
	}

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mimi", got.Name)
	assert.Equal(t, cats.SexFemale, got.Sex)
	assert.True(t, got.Care.Neutered)
	assert.False(t, got.Care.Dewormed)
	assert.True(t, got.Housing.Apartment)
	assert.False(t, got.InFoster)
	assert.Equal(t, "2022-05-10", got.BirthDate.Format(dates.Layout))

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, cats.ErrNotFound)
}

func TestCatsRepo_Update_ReplacesAttributes(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatsRepo(db)
	ctx := context.Background()
	c := seedCat(t, repo, "Mimi", cats.SexFemale, jan1)

	c.Name = "Mimi Maria"
	c.Care = cats.Care{Dewormed: true}
	c.Temperament = cats.Temperament{Calm: true}
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mimi Maria", got.Name)
	assert.False(t, got.Care.Neutered)
	assert.True(t, got.Care.Dewormed)
	assert.True(t, got.Temperament.Calm)
	assert.Equal(t, int64(1), countRows(t, db, &careRecord{}, "cat_id = ?", c.ID))

	c.ID = 999
	assert.ErrorIs(t, repo.Update(ctx, c), cats.ErrNotFound)
}

func TestCatsRepo_ListAvailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatsRepo(db)
	adoptRepo := NewAdoptionsRepo(db)
	ctx := context.Background()

	mimi := seedCat(t, repo, "Mimi", cats.SexFemale, jan1)
	tom := seedCat(t, repo, "Tom", cats.SexMale, jan1.Add(24*time.Hour))
	luna := seedCat(t, repo, "Luna", cats.SexFemale, jan1.Add(48*time.Hour))

	app := seedAdoptionApplication(t, adoptRepo, luna.ID, "Ana")
	require.NoError(t, adoptRepo.Register(ctx, &adoptions.Adopted{CatID: luna.ID, ApplicationID: app.ID, StartDate: mar1, CreatedAt: mar1}))

	all, err := repo.ListAvailable(ctx, cats.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, tom.ID, all[0].ID, "newest first")
	assert.Equal(t, mimi.ID, all[1].ID)

	byName, err := repo.ListAvailable(ctx, cats.ListFilter{Name: "MI"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Mimi", byName[0].Name)

	bySex, err := repo.ListAvailable(ctx, cats.ListFilter{Sex: cats.SexMale})
	require.NoError(t, err)
	require.Len(t, bySex, 1)
	assert.Equal(t, "Tom", bySex[0].Name)

	others, err := repo.ListAvailable(ctx, cats.ListFilter{ExcludeID: tom.ID, Limit: 4})
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, mimi.ID, others[0].ID)

	n, err := repo.CountAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCatsRepo_Delete_RemovesDependents(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatsRepo(db)
	adoptRepo := NewAdoptionsRepo(db)
	fosterRepo := NewFosterCareRepo(db)
	ctx := context.Background()

	tom := seedCat(t, repo, "Tom", cats.SexMale, jan1)
	seedAdoptionApplication(t, adoptRepo, tom.ID, "Ana")
	fapp := seedFosterApplication(t, fosterRepo, &tom.ID, "Carlos")
	require.NoError(t, fosterRepo.CreateIntakePlacement(ctx, &fostercare.Placement{CatID: tom.ID, ApplicationID: fapp.ID, StartDate: jan1}))

	deleted, err := repo.Delete(ctx, tom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tom", deleted.Name)

	assert.Zero(t, countRows(t, db, &catRecord{}, "id = ?", tom.ID))
	assert.Zero(t, countRows(t, db, &careRecord{}, "cat_id = ?", tom.ID))
	assert.Zero(t, countRows(t, db, &adoptionApplicationRecord{}, "cat_id = ?", tom.ID))
	assert.Zero(t, countRows(t, db, &placementRecord{}, "cat_id = ?", tom.ID))
	assert.Zero(t, countRows(t, db, &historyRecord{}, "cat_id = ?", tom.ID))

	got, err := fosterRepo.GetApplication(ctx, fapp.ID)
	require.NoError(t, err, "foster applications survive without a cat")
	assert.Nil(t, got.CatID)

	_, err = repo.Delete(ctx, tom.ID)
	assert.ErrorIs(t, err, cats.ErrNotFound)
}

// -------------------------
// Adopciones
// -------------------------

func TestAdoptionsRepo_MimiFlow(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewAdoptionsRepo(db)
	fosterRepo := NewFosterCareRepo(db)
	ctx := context.Background()

	mimi := seedCat(t, catsRepo, "Mimi", cats.SexFemale, jan1)
	app := seedAdoptionApplication(t, repo, mimi.ID, "Ana Souza")
	fapp := seedFosterApplication(t, fosterRepo, nil, "Carlos")
	require.NoError(t, fosterRepo.CreatePlacement(ctx, &fostercare.Placement{CatID: mimi.ID, ApplicationID: fapp.ID, StartDate: jan1}))

	a := adoptions.Adopted{CatID: mimi.ID, ApplicationID: app.ID, StartDate: mar1, Photo: "/media/x.jpg", CreatedAt: mar1}
	require.NoError(t, repo.Register(ctx, &a))
	require.NotZero(t, a.ID)

	has, err := repo.HasAdoption(ctx, mimi.ID)
	require.NoError(t, err)
	assert.True(t, has)

	got, err := repo.GetAdopted(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mimi", got.CatName)
	assert.Equal(t, "Ana Souza", got.ApplicantName)
	assert.True(t, got.CatAdopted)

	c, err := catsRepo.GetByID(ctx, mimi.ID)
	require.NoError(t, err)
	assert.True(t, c.Adopted)
	assert.Zero(t, countRows(t, db, &placementRecord{}, "cat_id = ?", mimi.ID), "placement removed on adoption")

	available, err := catsRepo.ListAvailable(ctx, cats.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, available)

	list, err := repo.ListAdopted(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	n, err := repo.CountAdopted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAdoptionsRepo_UpdateMovesFlag(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewAdoptionsRepo(db)
	ctx := context.Background()

	mimi := seedCat(t, catsRepo, "Mimi", cats.SexFemale, jan1)
	tom := seedCat(t, catsRepo, "Tom", cats.SexMale, jan1)
	app := seedAdoptionApplication(t, repo, mimi.ID, "Ana")
	a := adoptions.Adopted{CatID: mimi.ID, ApplicationID: app.ID, StartDate: mar1, CreatedAt: mar1}
	require.NoError(t, repo.Register(ctx, &a))

	a.CatID = tom.ID
	require.NoError(t, repo.UpdateAdopted(ctx, a, mimi.ID))

	m, _ := catsRepo.GetByID(ctx, mimi.ID)
	tt, _ := catsRepo.GetByID(ctx, tom.ID)
	assert.False(t, m.Adopted)
	assert.True(t, tt.Adopted)

	a.ID = 999
	assert.ErrorIs(t, repo.UpdateAdopted(ctx, a, tom.ID), adoptions.ErrNotFound)
}

func TestAdoptionsRepo_DeleteClearsFlag(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewAdoptionsRepo(db)
	ctx := context.Background()

	mimi := seedCat(t, catsRepo, "Mimi", cats.SexFemale, jan1)
	app := seedAdoptionApplication(t, repo, mimi.ID, "Ana")
	a := adoptions.Adopted{CatID: mimi.ID, ApplicationID: app.ID, StartDate: mar1, CreatedAt: mar1}
	require.NoError(t, repo.Register(ctx, &a))

	deleted, err := repo.DeleteAdopted(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mimi", deleted.CatName)

	c, _ := catsRepo.GetByID(ctx, mimi.ID)
	assert.False(t, c.Adopted)

	_, err = repo.DeleteAdopted(ctx, a.ID)
	assert.ErrorIs(t, err, adoptions.ErrNotFound)
	_, err = repo.GetApplication(ctx, 999)
	assert.ErrorIs(t, err, adoptions.ErrApplicationNotFound)
}

// -------------------------
// Lares temporários
// -------------------------

func TestFosterCareRepo_FinalizeTom(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewFosterCareRepo(db)
	ctx := context.Background()

	tom := seedCat(t, catsRepo, "Tom", cats.SexMale, jan1)
	app := seedFosterApplication(t, repo, nil, "Carlos Lima")
	p := fostercare.Placement{CatID: tom.ID, ApplicationID: app.ID, StartDate: jan1}
	require.NoError(t, repo.CreatePlacement(ctx, &p))

	c, _ := catsRepo.GetByID(ctx, tom.ID)
	assert.True(t, c.NeedsFoster)
	assert.True(t, c.InFoster)

	current, err := repo.GetPlacement(ctx, tom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tom", current.CatName)
	assert.Equal(t, "Carlos Lima", current.Caregiver.Name)
	assert.Equal(t, "Rua A, 5 - Centro, Santos - 11000-000", current.Caregiver.Address())

	h, err := repo.Finalize(ctx, tom.ID, mar1)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", h.StartDate.Format(dates.Layout))
	require.NotNil(t, h.EndDate)
	assert.Equal(t, "2024-03-01", h.EndDate.Format(dates.Layout))
	assert.Equal(t, "Carlos Lima", h.Caregiver.Name)

	assert.Equal(t, int64(1), countRows(t, db, &historyRecord{}, "cat_id = ?", tom.ID))
	assert.Zero(t, countRows(t, db, &placementRecord{}, "cat_id = ?", tom.ID))

	history, err := repo.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Tom", history[0].CatName)

	_, err = repo.Finalize(ctx, tom.ID, mar1)
	assert.ErrorIs(t, err, fostercare.ErrNotFound)
}

func TestFosterCareRepo_IntakeAndEdits(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewFosterCareRepo(db)
	ctx := context.Background()

	tom := seedCat(t, catsRepo, "Tom", cats.SexMale, jan1)
	app := seedFosterApplication(t, repo, &tom.ID, "Carlos")
	other := seedFosterApplication(t, repo, nil, "Beatriz")

	p := fostercare.Placement{CatID: tom.ID, ApplicationID: app.ID, StartDate: jan1}
	require.NoError(t, repo.CreateIntakePlacement(ctx, &p))

	has, err := repo.HasPlacement(ctx, tom.ID)
	require.NoError(t, err)
	assert.True(t, has)

	history, err := repo.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].EndDate)

	p.ApplicationID = other.ID
	require.NoError(t, repo.UpdatePlacement(ctx, p))
	got, err := repo.GetPlacement(ctx, tom.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beatriz", got.Caregiver.Name)

	h := history[0]
	end := mar1
	h.EndDate = &end
	require.NoError(t, repo.UpdateHistory(ctx, h))
	gotH, err := repo.GetHistory(ctx, h.ID)
	require.NoError(t, err)
	require.NotNil(t, gotH.EndDate)

	byCat, err := repo.ListApplicationsByCat(ctx, tom.ID)
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "Tom", byCat[0].CatName)

	_, err = repo.DeletePlacement(ctx, tom.ID)
	require.NoError(t, err)
	_, err = repo.DeleteHistory(ctx, h.ID)
	require.NoError(t, err)
	_, err = repo.DeleteHistory(ctx, h.ID)
	assert.ErrorIs(t, err, fostercare.ErrNotFound)
	_, err = repo.DeletePlacement(ctx, tom.ID)
	assert.ErrorIs(t, err, fostercare.ErrNotFound)
}

func TestFosterCareRepo_FinalizeAfterIntakeAppendsClosedEntry(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	repo := NewFosterCareRepo(db)
	ctx := context.Background()

	tom := seedCat(t, catsRepo, "Tom", cats.SexMale, jan1)
	app := seedFosterApplication(t, repo, &tom.ID, "Carlos Lima")
	p := fostercare.Placement{CatID: tom.ID, ApplicationID: app.ID, StartDate: jan1}
	require.NoError(t, repo.CreateIntakePlacement(ctx, &p))
	require.Equal(t, int64(1), countRows(t, db, &historyRecord{}, "cat_id = ?", tom.ID))

	h, err := repo.Finalize(ctx, tom.ID, mar1)
	require.NoError(t, err)
	require.NotNil(t, h.EndDate)

	// Una fila nueva y cerrada; la del ingreso queda como estaba.
	assert.Equal(t, int64(2), countRows(t, db, &historyRecord{}, "cat_id = ?", tom.ID))
	assert.Equal(t, int64(1), countRows(t, db, &historyRecord{}, "cat_id = ? AND end_date IS NULL", tom.ID))
	assert.Zero(t, countRows(t, db, &placementRecord{}, "cat_id = ?", tom.ID))
}

// -------------------------
// Panel y administradores
// -------------------------

func TestDashboardRepo_Counts(t *testing.T) {
	db := newTestDB(t)
	catsRepo := NewCatsRepo(db)
	adoptRepo := NewAdoptionsRepo(db)
	ctx := context.Background()

	seedCat(t, catsRepo, "Mimi", cats.SexFemale, jan1)
	tom := seedCat(t, catsRepo, "Tom", cats.SexMale, jan1)
	tom.NeedsFoster = true
	require.NoError(t, catsRepo.Update(ctx, tom))
	luna := seedCat(t, catsRepo, "Luna", cats.SexFemale, jan1)
	app := seedAdoptionApplication(t, adoptRepo, luna.ID, "Ana")
	require.NoError(t, adoptRepo.Register(ctx, &adoptions.Adopted{CatID: luna.ID, ApplicationID: app.ID, StartDate: mar1, CreatedAt: mar1}))

	c, err := NewDashboardRepo(db).Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.AwaitingAdoption)
	assert.Equal(t, int64(1), c.InFoster)
	assert.Equal(t, int64(1), c.Adopted)
}

func TestAdminsRepo_LoginAndSessions(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminsRepo(db)
	ctx := context.Background()

	a := admins.Admin{Username: "equipe", Email: "equipe@abrigo.org", PasswordHash: "x", CreatedAt: jan1}
	require.NoError(t, repo.Create(ctx, &a))

	byEmail, err := repo.GetByLogin(ctx, "EQUIPE@abrigo.org")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byEmail.ID)
	byUser, err := repo.GetByLogin(ctx, "equipe")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byUser.ID)
	_, err = repo.GetByLogin(ctx, "ninguem")
	assert.ErrorIs(t, err, admins.ErrNotFound)

	exists, err := repo.Exists(ctx, "outro", "Equipe@Abrigo.org")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.CreateSession(ctx, admins.Session{Token: "old", AdminID: a.ID, ExpiresAt: jan1, CreatedAt: jan1}))
	require.NoError(t, repo.CreateSession(ctx, admins.Session{Token: "new", AdminID: a.ID, ExpiresAt: mar1.Add(time.Hour), CreatedAt: mar1}))

	n, err := repo.DeleteExpiredSessions(ctx, mar1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	s, err := repo.GetSession(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, a.ID, s.AdminID)
	_, err = repo.GetSession(ctx, "old")
	assert.ErrorIs(t, err, admins.ErrSessionNotFound)

	require.NoError(t, repo.DeleteSession(ctx, "new"))
	_, err = repo.GetSession(ctx, "new")
	assert.ErrorIs(t, err, admins.ErrSessionNotFound)
}
