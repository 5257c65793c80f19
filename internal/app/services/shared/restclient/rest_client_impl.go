package restclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"nivlek-client/internal/app/config"
	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type restClient struct {
	BaseUrl  string
	TokenKey string
	Store    contracts.TokenStore
	Client   *http.Client
	Log      *zap.Logger
}

// NewRestClient builds the shared wire client. tokenKey selects which store
// entry supplies the bearer credential, so the user surface and the admin
// surface each get their own client over the same store. The token is looked
// up per request, never cached: a login that lands mid-run is picked up by
// the next call.
func NewRestClient(tokenKey string, store contracts.TokenStore, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.RestClient {
	httpClient := &http.Client{}
	if internalConfig.App.RequestTimeoutInSeconds > 0 {
		httpClient.Timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return &restClient{
		BaseUrl:  internalConfig.Backend.BaseUrl,
		TokenKey: tokenKey,
		Store:    store,
		Client:   httpClient,
		Log:      logger,
	}
}

func (c *restClient) Get(ctx context.Context, path string, out interface{}, resourceName string) error {
	fallback := fmt.Sprintf(constvars.ErrClientFailedFetchFallbackFmt, resourceName)
	return c.do(ctx, constvars.MethodGet, path, nil, out, resourceName, fallback)
}

func (c *restClient) Post(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	fallback := fmt.Sprintf(constvars.ErrClientFailedCreateFmt, resourceName)
	return c.do(ctx, constvars.MethodPost, path, body, out, resourceName, fallback)
}

func (c *restClient) Put(ctx context.Context, path string, body, out interface{}, resourceName string) error {
	fallback := fmt.Sprintf(constvars.ErrClientFailedUpdateFmt, resourceName)
	return c.do(ctx, constvars.MethodPut, path, body, out, resourceName, fallback)
}

func (c *restClient) do(ctx context.Context, method, path string, body, out interface{}, resourceName, fallback string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("restClient request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingPathKey, path),
	)

	var bodyReader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, bodyReader)
	if err != nil {
		c.Log.Error("restClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	// Bearer attachment is best effort: an empty or unreadable store entry
	// simply sends the request unauthenticated and lets the backend decide.
	token, err := c.Store.Get(ctx, c.TokenKey)
	if err == nil && token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("restClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		backendMessage := ""
		if readErr == nil {
			var errorBody responses.ErrorBody
			if json.Unmarshal(bodyBytes, &errorBody) == nil {
				backendMessage = errorBody.Error
			}
		}
		rejection := exceptions.ErrBackendRejected(resp.StatusCode, backendMessage, fallback)
		c.Log.Error("restClient backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
			zap.String(constvars.LoggingResourceKey, resourceName),
			zap.Error(rejection),
		)
		return rejection
	}

	if out != nil {
		err = json.NewDecoder(resp.Body).Decode(out)
		if err != nil {
			c.Log.Error("restClient error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPathKey, path),
				zap.Error(err),
			)
			return exceptions.ErrDecodeResponse(err, resourceName)
		}
	}

	c.Log.Info("restClient request succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingPathKey, path),
		zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
	)
	return nil
}
