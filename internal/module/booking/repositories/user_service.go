package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"travel-booking-service/internal/module/booking/models/response"
	"travel-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
)

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))

	resp, err := r.httpClient.Get(endpoint)
	if err != nil {
		r.log.Error(ctx, "error call user service", err)
		return response.UserServiceValidate{}, errors.InternalServerError("user service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn(ctx, "invalid token", "status", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		r.log.Error(ctx, "error decode user service response", err)
		return response.UserServiceValidate{}, errors.InternalServerError("error decode user service response")
	}

	if !respData.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}
