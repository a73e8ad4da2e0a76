package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
)

type fakeCounts struct {
	c   Counts
	err error
}

func (f fakeCounts) Counts(context.Context) (Counts, error) { return f.c, f.err }

type fakeCats struct {
	got cats.ListInput
}

func (f *fakeCats) ListAvailable(_ context.Context, in cats.ListInput) (cats.ListResult, error) {
	f.got = in
	return cats.ListResult{Cats: []cats.Cat{{ID: 1, Name: "Mimi"}}, ShowAll: in.ShowAll, Total: 1}, nil
}

type fakeAdopted struct {
	gotShowAll bool
}

func (f *fakeAdopted) ListAdopted(_ context.Context, showAll bool) (adoptions.AdoptedList, error) {
	f.gotShowAll = showAll
	return adoptions.AdoptedList{Items: []adoptions.Adopted{{ID: 3, CatName: "Tom"}}, ShowAll: showAll, Total: 1}, nil
}

type fakeFoster struct{}

func (fakeFoster) ListPlacements(context.Context) ([]fostercare.Placement, error) {
	return []fostercare.Placement{{ID: 1, CatName: "Tom", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}, nil
}

func (fakeFoster) ListHistory(context.Context) ([]fostercare.HistoryEntry, error) {
	return []fostercare.HistoryEntry{}, nil
}

func TestService_Adoptions_NeverTruncates(t *testing.T) {
	fc := &fakeCats{}
	svc := NewService(fakeCounts{c: Counts{AwaitingAdoption: 9, InFoster: 2, Adopted: 4}}, fc, &fakeAdopted{}, fakeFoster{})

	view, err := svc.Adoptions(context.Background(), "mi", "F")
	require.NoError(t, err)
	assert.True(t, fc.got.ShowAll)
	assert.Equal(t, "mi", fc.got.Name)
	assert.Equal(t, "F", fc.got.Sex)
	assert.Equal(t, int64(9), view.Counts.AwaitingAdoption)
	assert.Len(t, view.Cats, 1)
}

func TestService_Adopted_ListsEverything(t *testing.T) {
	fa := &fakeAdopted{}
	svc := NewService(fakeCounts{}, &fakeCats{}, fa, fakeFoster{})

	view, err := svc.Adopted(context.Background())
	require.NoError(t, err)
	assert.True(t, fa.gotShowAll)
	require.Len(t, view.Adopted, 1)
	assert.Equal(t, "Tom", view.Adopted[0].CatName)
}

func TestService_Foster(t *testing.T) {
	svc := NewService(fakeCounts{c: Counts{InFoster: 1}}, &fakeCats{}, &fakeAdopted{}, fakeFoster{})

	view, err := svc.Foster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Counts.InFoster)
	assert.Len(t, view.Placements, 1)
	assert.Empty(t, view.History)
}

func TestService_CountsError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(fakeCounts{err: boom}, &fakeCats{}, &fakeAdopted{}, fakeFoster{})

	_, err := svc.Foster(context.Background())
	assert.ErrorIs(t, err, boom)
}
