package profile

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/google/uuid"
)

type ProfileUseCase interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	GetProfile(ctx context.Context, travelerID string) (*Profile, error)
	UpdateProfile(ctx context.Context, travelerID string, patch ProfilePatch) (*Profile, error)
}

type TokenIssuer interface {
	Issue(travelerID, email string) (string, time.Time, error)
}

type LoginInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Traveler  domain.Traveler `json:"traveler"`
}

type Profile struct {
	Traveler     domain.Traveler      `json:"traveler"`
	Initials     string               `json:"initials"`
	Stats        domain.TravelerStats `json:"stats"`
	Achievements []domain.Achievement `json:"achievements"`
}

// ProfilePatch holds the editable settings. Nil fields are left unchanged.
type ProfilePatch struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Notifications  *bool   `json:"notifications"`
	LocationAccess *bool   `json:"location_access"`
}

type ProfileService struct {
	travelers repository.TravelerRepository
	tokens    TokenIssuer
}

func NewProfileService(travelers repository.TravelerRepository, tokens TokenIssuer) *ProfileService {
	return &ProfileService{travelers: travelers, tokens: tokens}
}

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}

func (s *ProfileService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	raw := strings.TrimSpace(input.Email)
	if raw == "" {
		return nil, validationError("email is required")
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return nil, validationError(fmt.Sprintf("invalid email %q", raw))
	}
	// Only the bare mailbox identifies a traveler; a display name such as
	// "Jane Doe <jane@example.com>" is used for the name at most.
	email := strings.ToLower(addr.Address)
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = strings.TrimSpace(addr.Name)
	}
	if name == "" {
		name = email[:strings.LastIndex(email, "@")]
	}

	traveler := &domain.Traveler{ID: uuid.NewString(), Name: name, Email: email}
	if err := s.travelers.UpsertByEmail(ctx, traveler); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(traveler.ID, traveler.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Traveler: *traveler}, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, travelerID string) (*Profile, error) {
	traveler, err := s.travelers.GetByID(ctx, travelerID)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, traveler)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, travelerID string, patch ProfilePatch) (*Profile, error) {
	traveler, err := s.travelers.GetByID(ctx, travelerID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationError("name must not be empty")
		}
		traveler.Name = name
	}
	if patch.Phone != nil {
		traveler.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Notifications != nil {
		traveler.Notifications = *patch.Notifications
	}
	if patch.LocationAccess != nil {
		traveler.LocationAccess = *patch.LocationAccess
	}

	if err := s.travelers.Update(ctx, traveler); err != nil {
		return nil, err
	}
	return s.profile(ctx, traveler)
}

func (s *ProfileService) profile(ctx context.Context, traveler *domain.Traveler) (*Profile, error) {
	stats, err := s.travelers.Stats(ctx, traveler.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Traveler:     *traveler,
		Initials:     traveler.Initials(),
		Stats:        stats,
		Achievements: domain.Achievements(stats),
	}, nil
}

var _ ProfileUseCase = (*ProfileService)(nil)
