package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"notedeck/notes-api/model"
	"notedeck/notes-api/store"
)

// placeholder hash for rows whose passwords live with the identity
// service. It never matches any password on the local verify paths.
const externalHash = "external"

// Remote delegates credential checks to an external identity service
// but still maintains a local user row, because folder and note
// ownership is keyed on the local user ID.
type Remote struct {
	store  *store.Store
	client *http.Client
}

func NewRemote(s *store.Store) *Remote {
	return &Remote{
		store:  s,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Remote) SignUp(email, password string) (*model.User, error) {
	if err := r.call("/signup", email, password); err != nil {
		return nil, err
	}

	user, err := r.store.CreateUser(email, externalHash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	return user, nil
}

func (r *Remote) Authenticate(email, password string) (*model.User, error) {
	if err := r.call("/authenticate", email, password); err != nil {
		return nil, err
	}

	user, err := r.store.FindUserByEmail(email)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// First login of an identity created before this backend existed
	user, err = r.store.CreateUser(email, externalHash)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Remote) call(path, email, password string) error {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	req, err := http.NewRequest(http.MethodPost, viper.GetString("auth.remote.url")+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if key := viper.GetString("auth.remote.api_key"); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		zap.L().Error("Identity service unreachable", zap.Error(err))
		return fmt.Errorf("identity service unreachable, %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrInvalidCredentials
	case resp.StatusCode == http.StatusConflict:
		return ErrDuplicateEmail
	default:
		return fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}
