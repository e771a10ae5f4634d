package playerservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	gofakeit.Seed(11)

	tests := []struct {
		name      string
		input     RegistrationInput
		repoErr   error
		wantErr   error
		wantCalls []string
	}{
		{
			name: "valid registration",
			input: RegistrationInput{
				Name:          gofakeit.Name(),
				Email:         gofakeit.Email(),
				HandicapIndex: 14.2,
			},
			wantCalls: []string{"CreatePlayer"},
		},
		{
			name: "plus handicap is allowed",
			input: RegistrationInput{
				Name:          gofakeit.Name(),
				HandicapIndex: -3.5,
			},
			wantCalls: []string{"CreatePlayer"},
		},
		{
			name:      "blank name rejected",
			input:     RegistrationInput{Name: "   ", HandicapIndex: 10},
			wantErr:   ErrInvalidRegistration,
			wantCalls: []string{},
		},
		{
			name: "handicap index out of range",
			input: RegistrationInput{
				Name:          gofakeit.Name(),
				HandicapIndex: 55,
			},
			wantErr:   ErrInvalidRegistration,
			wantCalls: []string{},
		},
		{
			name: "repo error propagates",
			input: RegistrationInput{
				Name:          gofakeit.Name(),
				HandicapIndex: 8,
			},
			repoErr:   errors.New("db down"),
			wantErr:   errors.New("db down"),
			wantCalls: []string{"CreatePlayer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakePlayerRepository()
			if tt.repoErr != nil {
				repo.CreatePlayerFunc = func(context.Context, *playerdb.Player) error {
					return tt.repoErr
				}
			}
			svc := NewPlayerService(repo, discardLogger())

			player, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRegistration) {
					assert.ErrorIs(t, err, ErrInvalidRegistration)
				}
				assert.Nil(t, player)
			} else {
				require.NoError(t, err)
				require.NotNil(t, player)
				assert.NotEqual(t, uuid.Nil, player.ID)
				assert.Equal(t, tt.input.HandicapIndex, player.HandicapIndex)
			}
			assert.Equal(t, tt.wantCalls, repo.Trace())
		})
	}
}

func TestRegisterTrimsNameAndEmail(t *testing.T) {
	repo := NewFakePlayerRepository()
	svc := NewPlayerService(repo, discardLogger())

	player, err := svc.Register(context.Background(), RegistrationInput{
		Name:          "  Sam Snead  ",
		Email:         "  sam@example.com ",
		HandicapIndex: 2.4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam Snead", player.Name)
	assert.Equal(t, "sam@example.com", player.Email)
	assert.Same(t, player, repo.LastCreated)
}

func TestUpdateValidatesBeforeTouchingStorage(t *testing.T) {
	repo := NewFakePlayerRepository()
	svc := NewPlayerService(repo, discardLogger())

	_, err := svc.Update(context.Background(), uuid.New(), RegistrationInput{Name: ""})
	require.ErrorIs(t, err, ErrInvalidRegistration)
	assert.Empty(t, repo.Trace())
}

func TestUpdateKeepsRequestedID(t *testing.T) {
	repo := NewFakePlayerRepository()
	svc := NewPlayerService(repo, discardLogger())
	id := uuid.New()

	player, err := svc.Update(context.Background(), id, RegistrationInput{
		Name:          gofakeit.Name(),
		HandicapIndex: 20.1,
	})
	require.NoError(t, err)
	assert.Equal(t, id, player.ID)
	assert.Equal(t, []string{"UpdatePlayer"}, repo.Trace())
}

func TestGetUnknownPlayer(t *testing.T) {
	repo := NewFakePlayerRepository()
	svc := NewPlayerService(repo, discardLogger())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, playerdb.ErrPlayerNotFound)
}
