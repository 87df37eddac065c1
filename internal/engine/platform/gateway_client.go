package platform

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/matthew11k/outreach/internal/common/httputil"
	"github.com/matthew11k/outreach/internal/common/metrics"
	customerrors "github.com/matthew11k/outreach/internal/domain/errors"
	"github.com/matthew11k/outreach/internal/domain/models"
)

// GatewayClient talks to the MTProto gateway sidecar that owns the session.
type GatewayClient struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string
	session string
	logger  *slog.Logger
}

func NewGatewayClient(client *resty.Client, baseURL, token, session string, rps float64, logger *slog.Logger) *GatewayClient {
	if token != "" {
		client.SetAuthToken(token)
	}

	client.SetHeader("Content-Type", "application/json")

	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	return &GatewayClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
		logger:  logger,
	}
}

type resolveRequest struct {
	Ref string `json:"ref"`
}

type peerRequest struct {
	Peer string `json:"peer"`
}

type sendRequest struct {
	Peer string `json:"peer"`
	Text string `json:"text"`
}

type forwardRequest struct {
	Peer       string `json:"peer"`
	FromChatID int64  `json:"from_chat_id"`
	MessageID  int64  `json:"message_id"`
}

type deltaRequest struct {
	ChannelID  int64 `json:"channel_id"`
	AccessHash int64 `json:"access_hash"`
	Position   int64 `json:"position"`
	MinID      int64 `json:"min_id"`
	MaxID      int64 `json:"max_id"`
	Limit      int   `json:"limit"`
	Force      bool  `json:"force"`
}

type historyResponse struct {
	Messages []models.Message `json:"messages"`
}

type filtersResponse struct {
	Filters []models.DialogFilter `json:"filters"`
}

func (c *GatewayClient) ResolveEntity(ctx context.Context, ref string) (*models.Entity, error) {
	var entity models.Entity
	if err := c.post(ctx, "/entities/resolve", resolveRequest{Ref: ref}, &entity); err != nil {
		return nil, errors.Wrapf(err, "resolve %s", ref)
	}

	return &entity, nil
}

func (c *GatewayClient) RefreshDialogs(ctx context.Context) error {
	if err := c.post(ctx, "/dialogs/refresh", struct{}{}, nil); err != nil {
		return errors.Wrap(err, "refresh dialogs")
	}

	return nil
}

func (c *GatewayClient) FetchChannelMetadata(ctx context.Context, entity *models.Entity) (*models.ChannelMetadata, error) {
	var meta models.ChannelMetadata

	path := "/channels/" + strconv.FormatInt(entity.ID, 10) + "/metadata"
	if err := c.get(ctx, path, map[string]string{"access_hash": strconv.FormatInt(entity.AccessHash, 10)}, &meta); err != nil {
		return nil, errors.Wrapf(err, "channel metadata %d", entity.ID)
	}

	return &meta, nil
}

func (c *GatewayClient) FetchDelta(
	ctx context.Context,
	entity *models.Entity,
	position int64,
	window models.DeltaRange,
	limit int,
) (*models.Delta, error) {
	var delta models.Delta

	req := deltaRequest{
		ChannelID:  entity.ID,
		AccessHash: entity.AccessHash,
		Position:   position,
		MinID:      window.MinID,
		MaxID:      window.MaxID,
		Limit:      limit,
		Force:      true,
	}

	if err := c.post(ctx, "/channels/difference", req, &delta); err != nil {
		return nil, errors.Wrapf(err, "channel difference %d", entity.ID)
	}

	return &delta, nil
}

func (c *GatewayClient) FetchHistory(ctx context.Context, entity *models.Entity, limit int) ([]models.Message, error) {
	var resp historyResponse

	path := "/channels/" + strconv.FormatInt(entity.ID, 10) + "/history"
	query := map[string]string{
		"access_hash": strconv.FormatInt(entity.AccessHash, 10),
		"limit":       strconv.Itoa(limit),
	}

	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, errors.Wrapf(err, "channel history %d", entity.ID)
	}

	return resp.Messages, nil
}

func (c *GatewayClient) SendMessage(ctx context.Context, peer, text string) error {
	if err := c.post(ctx, "/messages/send", sendRequest{Peer: peer, Text: text}, nil); err != nil {
		return errors.Wrapf(err, "send message to %s", peer)
	}

	return nil
}

func (c *GatewayClient) ForwardMessage(ctx context.Context, peer string, fromChatID, messageID int64) error {
	req := forwardRequest{Peer: peer, FromChatID: fromChatID, MessageID: messageID}
	if err := c.post(ctx, "/messages/forward", req, nil); err != nil {
		return errors.Wrapf(err, "forward message to %s", peer)
	}

	return nil
}

func (c *GatewayClient) GetSelf(ctx context.Context) (*models.Self, error) {
	var self models.Self
	if err := c.get(ctx, "/self", nil, &self); err != nil {
		return nil, errors.Wrap(err, "get self")
	}

	return &self, nil
}

func (c *GatewayClient) ListDialogFilters(ctx context.Context) ([]models.DialogFilter, error) {
	var resp filtersResponse
	if err := c.get(ctx, "/dialogs/filters", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "list dialog filters")
	}

	return resp.Filters, nil
}

func (c *GatewayClient) BlockUser(ctx context.Context, peer string) error {
	if err := c.post(ctx, "/users/block", peerRequest{Peer: peer}, nil); err != nil {
		return errors.Wrapf(err, "block %s", peer)
	}

	return nil
}

func (c *GatewayClient) UnblockUser(ctx context.Context, peer string) error {
	if err := c.post(ctx, "/users/unblock", peerRequest{Peer: peer}, nil); err != nil {
		return errors.Wrapf(err, "unblock %s", peer)
	}

	return nil
}

func (c *GatewayClient) url(path string) string {
	return c.baseURL + "/v1/sessions/" + c.session + path
}

func (c *GatewayClient) get(ctx context.Context, path string, query map[string]string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(ErrConnection, err.Error())
	}

	req := c.client.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}

	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Get(c.url(path))
	c.record(http.MethodGet, path, resp)

	return c.check(path, resp, err)
}

func (c *GatewayClient) post(ctx context.Context, path string, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(ErrConnection, err.Error())
	}

	req := c.client.R().SetContext(ctx).SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(c.url(path))
	c.record(http.MethodPost, path, resp)

	return c.check(path, resp, err)
}

func (c *GatewayClient) record(method, path string, resp *resty.Response) {
	var (
		statusCode int
		duration   time.Duration
	)

	if resp != nil {
		statusCode = resp.StatusCode()
		duration = resp.Time()
	}

	metrics.RecordHTTPRequest("gateway", method, endpointLabel(path), statusCode, duration)
}

// endpointLabel replaces numeric path segments so ids do not end up in metric labels.
func endpointLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if _, err := strconv.ParseInt(segment, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func (c *GatewayClient) check(path string, resp *resty.Response, err error) error {
	if err != nil {
		var httpErr *customerrors.HTTPError
		if errors.As(err, &httpErr) {
			return errors.Wrap(ErrConnection, httpErr.Error())
		}

		c.logger.Warn("Ошибка запроса к шлюзу платформы",
			"path", path,
			"error", err,
		)

		return errors.Wrap(ErrConnection, err.Error())
	}

	if !resp.IsError() {
		return nil
	}

	httpErr := decodeGatewayError(resp.StatusCode(), resp.Body())

	c.logger.Warn("Шлюз платформы вернул ошибку",
		"path", path,
		"status", httpErr.StatusCode,
		"code", httpErr.Code,
		"retryAfter", httpErr.RetryAfter,
	)

	return errors.Wrap(sentinelFor(httpErr), httpErr.Error())
}

func sentinelFor(httpErr *customerrors.HTTPError) error {
	switch httpErr.StatusCode {
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case httputil.StatusFloodWait, http.StatusTooManyRequests:
		return ErrRateLimited
	}

	switch httpErr.Code {
	case "CHANNEL_PRIVATE", "CHAT_WRITE_FORBIDDEN", "USER_PRIVACY_RESTRICTED":
		return ErrForbidden
	case "FLOOD_WAIT", "PEER_FLOOD":
		return ErrRateLimited
	case "USERNAME_NOT_OCCUPIED", "PEER_ID_INVALID":
		return ErrNotFound
	}

	return ErrConnection
}

// decodeGatewayError reads {"code": "...", "retry_after": N} and ignores anything else.
func decodeGatewayError(statusCode int, body []byte) *customerrors.HTTPError {
	httpErr := &customerrors.HTTPError{StatusCode: statusCode}

	if len(body) == 0 {
		return httpErr
	}

	_ = jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "code":
			v, err := d.Str()
			httpErr.Code = v

			return err
		case "retry_after":
			v, err := d.Int()
			httpErr.RetryAfter = v

			return err
		default:
			return d.Skip()
		}
	})

	return httpErr
}
