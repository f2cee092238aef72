package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/repositories"
	"campus-event-catalog/internal/seed"
	"campus-event-catalog/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type LoginOutcome string

const (
	OutcomeExistingUser    LoginOutcome = "existing_user"
	OutcomeSynthesizedUser LoginOutcome = "synthesized_user"
)

type LoginResult struct {
	User    *models.User `json:"user"`
	Outcome LoginOutcome `json:"outcome"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
	Outcome   LoginOutcome `json:"outcome"`
}

// ProfilePatch lists the fields a user may change on their own profile. Nil
// fields are left untouched.
type ProfilePatch struct {
	Name       *string `json:"name"`
	Section    *string `json:"section"`
	Department *string `json:"department"`
}

type AuthService struct {
	repo  *repositories.Repository
	cfg   *config.Config
	clock Clock
	log   *logrus.Entry
}

func NewAuthService(repo *repositories.Repository, cfg *config.Config, clock Clock) *AuthService {
	return &AuthService{
		repo:  repo,
		cfg:   cfg,
		clock: clock,
		log:   logger.For("auth_service"),
	}
}

// Session binds the gate to one persisted session slot.
func (s *AuthService) Session(sessionID string) *Session {
	return &Session{id: sessionID, svc: s}
}

// Login opens a new session and issues a token that names it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	sessionID := uuid.NewString()
	result, err := s.Session(sessionID).Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.generateJWT(sessionID, result.User)
	if err != nil {
		s.log.WithError(err).Error("failed to sign token")
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      result.User,
		Outcome:   result.Outcome,
	}, nil
}

func (s *AuthService) generateJWT(sessionID string, user *models.User) (string, time.Time, error) {
	now := s.clock()
	expiresAt := now.Add(s.cfg.JWTTTL)
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    user.ID,
		"role":       string(user.Role),
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	return signed, expiresAt, err
}

// SynthesizeUser builds the account for a first-time email: the name comes
// from the dot-separated local part, the role from hints in it.
func SynthesizeUser(email string) *models.User {
	local := email
	if at := strings.LastIndex(email, "@"); at >= 0 {
		local = email[:at]
	}

	words := []string{}
	for _, part := range strings.Split(local, ".") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		words = append(words, string(unicode.ToUpper(r))+part[size:])
	}

	role := models.RoleStudent
	switch {
	case strings.Contains(local, "faculty"):
		role = models.RoleFaculty
	case strings.Contains(local, "admin"):
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:         "user-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Name:       strings.Join(words, " "),
		Email:      email,
		Role:       role,
		Department: "Computer Science",
	}
	if role == models.RoleStudent {
		user.Section = "CSE-A"
	}
	return user
}

// Session is the Anonymous/Authenticated state machine for one session id.
// The persisted slot is the only state; nothing is cached here.
type Session struct {
	id  string
	svc *AuthService
}

func (s *Session) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	domain := strings.ToLower(s.svc.cfg.InstitutionDomain)

	if email == "" || password == "" {
		return nil, invalid("", "email and password are required")
	}
	if strings.Count(email, "@") != 1 || !strings.HasSuffix(email, "@"+domain) || len(email) == len(domain)+1 {
		return nil, invalid("email", "please use your "+domain+" email address")
	}

	repo := s.svc.repo
	outcome := OutcomeExistingUser
	user, err := repo.UserRepo.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		user = SynthesizeUser(email)
		outcome = OutcomeSynthesizedUser
		if err := repo.UserRepo.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if err := repo.SessionRepo.SaveSession(ctx, s.id, user); err != nil {
		return nil, err
	}

	s.svc.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
		"outcome": outcome,
	}).Info("login succeeded")

	return &LoginResult{User: user, Outcome: outcome}, nil
}

func (s *Session) Logout(ctx context.Context) error {
	return s.svc.repo.SessionRepo.DeleteSession(ctx, s.id)
}

func (s *Session) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := s.svc.repo.SessionRepo.GetSession(ctx, s.id)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, ErrNotAuthenticated
	}
	return user, err
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	_, err := s.CurrentUser(ctx)
	return err == nil
}

// IsStaff is read from the stored role on every call.
func (s *Session) IsStaff(ctx context.Context) bool {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return false
	}
	return user.IsStaff()
}

// UpdateProfile applies patch to the signed-in user. Role and email never
// change.
func (s *Session) UpdateProfile(ctx context.Context, patch ProfilePatch) (*models.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name", "name is required")
		}
		user.Name = name
	}
	if patch.Section != nil {
		section := strings.TrimSpace(*patch.Section)
		if section != "" && !seed.IsSection(section) {
			return nil, invalid("section", "unknown section "+section)
		}
		user.Section = section
	}
	if patch.Department != nil {
		user.Department = strings.TrimSpace(*patch.Department)
	}

	repo := s.svc.repo
	if err := repo.SessionRepo.SaveSession(ctx, s.id, user); err != nil {
		return nil, err
	}
	if err := repo.UserRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
