package app

import (
	"errors"
	"fmt"
	"time"

	"westscore/internal/ports"

	"github.com/form3tech-oss/jwt-go"
)

var (
	ErrShareDisabled     = errors.New("game sharing is not configured")
	ErrInvalidShareToken = errors.New("invalid share token")
)

// ShareService signs and verifies read-only scoreboard links.
type ShareService struct {
	secret string
	issuer string
	ttl    time.Duration
	ids    ports.IDGenerator
	clock  ports.Clock
}

// ShareToken is a signed link to one game of one owner.
type ShareToken struct {
	Token     string    `json:"token"`
	GameID    string    `json:"gameId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShareClaims identify the game a verified token grants access to.
type ShareClaims struct {
	OwnerID string
	GameID  string
}

func NewShareService(secret, issuer string, ttl time.Duration, ids ports.IDGenerator, clock ports.Clock) *ShareService {
	return &ShareService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		ids:    ids,
		clock:  clock,
	}
}

// Enabled reports whether a signing secret is configured.
func (s *ShareService) Enabled() bool {
	return s != nil && s.secret != ""
}

// Issue signs a token that lets anyone holding it read gameID of ownerID.
func (s *ShareService) Issue(ownerID, gameID string) (ShareToken, error) {
	if !s.Enabled() {
		return ShareToken{}, ErrShareDisabled
	}
	if ownerID == "" || gameID == "" {
		return ShareToken{}, fmt.Errorf("owner and game are required")
	}

	jti, err := s.ids.NewID()
	if err != nil {
		return ShareToken{}, err
	}
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": ownerID,
		"gid": gameID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"jti": jti,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return ShareToken{}, fmt.Errorf("failed to sign share token: %w", err)
	}
	return ShareToken{Token: signed, GameID: gameID, ExpiresAt: expiresAt}, nil
}

// Verify checks the signature, expiry and issuer of tokenString.
func (s *ShareService) Verify(tokenString string) (ShareClaims, error) {
	if !s.Enabled() {
		return ShareClaims{}, ErrShareDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return ShareClaims{}, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ShareClaims{}, ErrInvalidShareToken
	}
	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return ShareClaims{}, fmt.Errorf("%w: unexpected issuer", ErrInvalidShareToken)
	}

	owner, _ := claims["sub"].(string)
	gameID, _ := claims["gid"].(string)
	if owner == "" || gameID == "" {
		return ShareClaims{}, fmt.Errorf("%w: missing subject or game", ErrInvalidShareToken)
	}
	return ShareClaims{OwnerID: owner, GameID: gameID}, nil
}
