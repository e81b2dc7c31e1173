package credential

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

const (
	approvalPath = "/oauth2/Approval"
	tokenPath    = "/oauth2/tokenP"

	grantType = "client_credentials"
)

type approvalResponse struct {
	ApprovalKey string `json:"approval_key"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ApprovalKeyIssuer issues the websocket approval key from the provider's
// OAuth endpoint.
type ApprovalKeyIssuer struct {
	client    *resty.Client
	appKey    string
	appSecret string
	logger    logger.Interface
}

// NewApprovalKeyIssuer creates an ApprovalKeyIssuer against the given REST
// base URL.
func NewApprovalKeyIssuer(baseURL, appKey, appSecret string, log logger.Interface) *ApprovalKeyIssuer {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)

	return &ApprovalKeyIssuer{
		client:    client,
		appKey:    appKey,
		appSecret: appSecret,
		logger:    log,
	}
}

// Issue requests a new approval key.
func (i *ApprovalKeyIssuer) Issue(ctx context.Context) (string, error) {
	i.logger.InfoContext(ctx, "requesting approval key", logger.Field{
		Key:   "action",
		Value: "approval_key_issue",
	})

	var parsed approvalResponse
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"grant_type": grantType,
			"appkey":     i.appKey,
			"secretkey":  i.appSecret,
		}).
		SetResult(&parsed).
		Post(approvalPath)
	if err != nil {
		return "", errors.NewErrorDetails(err.Error(), string(errors.CredentialIssueError), "approval_key")
	}

	if resp.StatusCode() != http.StatusOK || parsed.ApprovalKey == "" {
		return "", errors.NewErrorDetails("approval key issuance failed", string(errors.CredentialIssueError), "approval_key")
	}

	i.logger.InfoContext(ctx, "approval key issued", logger.Field{
		Key:   "action",
		Value: "approval_key_issued",
	})
	return parsed.ApprovalKey, nil
}

// AccessTokenIssuer issues the REST bearer token from the provider's OAuth
// endpoint. On a rate-limit response it waits out a fixed cooldown and
// retries exactly once.
type AccessTokenIssuer struct {
	client    *resty.Client
	appKey    string
	appSecret string
	cooldown  time.Duration
	logger    logger.Interface

	sleep func(time.Duration)
}

// NewAccessTokenIssuer creates an AccessTokenIssuer against the given REST
// base URL.
func NewAccessTokenIssuer(baseURL, appKey, appSecret string, cooldown time.Duration, log logger.Interface) *AccessTokenIssuer {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)

	return &AccessTokenIssuer{
		client:    client,
		appKey:    appKey,
		appSecret: appSecret,
		cooldown:  cooldown,
		logger:    log,
		sleep:     time.Sleep,
	}
}

// Issue requests a new access token.
func (i *AccessTokenIssuer) Issue(ctx context.Context) (string, error) {
	return i.issue(ctx, false)
}

func (i *AccessTokenIssuer) issue(ctx context.Context, retried bool) (string, error) {
	i.logger.InfoContext(ctx, "requesting access token", logger.Field{
		Key:   "action",
		Value: "access_token_issue",
	})

	var parsed tokenResponse
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"grant_type": grantType,
			"appkey":     i.appKey,
			"appsecret":  i.appSecret,
		}).
		SetResult(&parsed).
		Post(tokenPath)
	if err != nil {
		return "", errors.NewErrorDetails(err.Error(), string(errors.CredentialIssueError), "access_token")
	}

	if resp.StatusCode() == http.StatusForbidden {
		// The provider throttles token issuance. Retry once after the
		// cooldown; a second refusal is fatal to the caller.
		if retried {
			return "", errors.NewErrorDetails("access token issuance rate limited", string(errors.CredentialRateLimitError), "access_token")
		}
		i.logger.WarnContext(ctx, "access token issuance rate limited, retrying after cooldown", logger.Field{
			Key:   "cooldown",
			Value: i.cooldown,
		})
		i.sleep(i.cooldown)
		return i.issue(ctx, true)
	}

	if resp.StatusCode() != http.StatusOK || parsed.AccessToken == "" {
		return "", errors.NewErrorDetails("access token issuance failed", string(errors.CredentialIssueError), "access_token")
	}

	i.logger.InfoContext(ctx, "access token issued", logger.Field{
		Key:   "action",
		Value: "access_token_issued",
	})
	return parsed.AccessToken, nil
}
