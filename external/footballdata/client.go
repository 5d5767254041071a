package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/platform/logging"
	"github.com/gafferhq/gaffer/internal/platform/resilience"
	"github.com/gafferhq/gaffer/internal/usecase"
)

const (
	defaultBaseURL     = "https://api.football-data.example.com/v1"
	defaultTimeout     = 20 * time.Second
	maxResponseBytes   = 6 << 20
	defaultMaxRetries  = 2
	squadEndpointPath  = "/clubs/squad"
	squadResponseLimit = 64
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errProviderTransient = crerr.New("football data transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches club rosters from the football data provider. It
// implements usecase.SquadImporter.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			MaxResponseBodySize: maxResponseBytes,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchSquad(ctx context.Context, clubName string) ([]usecase.ImportedPlayer, error) {
	clubName = strings.TrimSpace(clubName)
	if clubName == "" {
		return nil, fmt.Errorf("club name is required")
	}

	query := url.Values{}
	query.Set("name", clubName)
	if c.token != "" {
		query.Set("api_token", c.token)
	}

	fullURL := buildRequestURL(c.baseURL, squadEndpointPath, query)

	raw, err := c.doJSON(ctx, clubName, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch squad club=%q: %w", clubName, err)
	}

	var envelope squadEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	out := make([]usecase.ImportedPlayer, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if len(out) >= squadResponseLimit {
			break
		}
		mapped, ok := mapSquadEntry(item)
		if !ok {
			c.logger.WarnContext(ctx, "skip provider squad entry",
				"club", clubName,
				"player", item.Name,
				"position", item.Position,
			)
			continue
		}
		out = append(out, mapped)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, flightKey, fullURL string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football data circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	out, err, _ := c.flight.Do(flightKey, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errProviderTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, retryable, err := c.performOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football data request failed", "url", redactTokenParam(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) performOnce(fullURL string) ([]byte, bool, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, true, fmt.Errorf("%w: send request: %s", errProviderTransient, sanitizeSensitiveText(err.Error(), c.token))
	}

	status := resp.StatusCode()
	// The response buffer is pooled; copy before release.
	raw := append([]byte(nil), resp.Body()...)

	if status >= 200 && status < 300 {
		return raw, false, nil
	}
	if isRetryableStatus(status) {
		return nil, true, fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, status, abbreviateBody(raw))
	}
	return nil, false, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
}

func buildRequestURL(baseURL, path string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(baseURL)
	_, _ = buf.WriteString(path)
	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}
	return buf.String()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
}

func redactTokenParam(fullURL string) string {
	return apiTokenParamRegex.ReplaceAllString(fullURL, "api_token=REDACTED")
}

type squadEnvelope struct {
	Data []squadEntry `json:"data"`
}

type squadEntry struct {
	Name               string   `json:"name"`
	Nationality        string   `json:"nationality"`
	Position           string   `json:"position"`
	SecondaryPositions []string `json:"secondary_positions"`
	KitNumber          *int     `json:"kit_number"`
	Overall            int      `json:"overall"`
	MarketValue        int64    `json:"market_value"`
	BirthYear          int      `json:"birth_year"`
}

var positionAliases = map[string]player.Position{
	"GOALKEEPER": player.PositionGK,
	"KEEPER":     player.PositionGK,
	"DEFENDER":   player.PositionCB,
	"MIDFIELDER": player.PositionCM,
	"FORWARD":    player.PositionST,
	"STRIKER":    player.PositionST,
}

func parsePosition(value string) (player.Position, bool) {
	code := player.Position(strings.ToUpper(strings.TrimSpace(value)))
	if player.IsValidPosition(code) {
		return code, true
	}
	if alias, ok := positionAliases[string(code)]; ok {
		return alias, true
	}
	return "", false
}

func mapSquadEntry(item squadEntry) (usecase.ImportedPlayer, bool) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return usecase.ImportedPlayer{}, false
	}
	pos, ok := parsePosition(item.Position)
	if !ok {
		return usecase.ImportedPlayer{}, false
	}

	secondary := make([]player.Position, 0, len(item.SecondaryPositions))
	for _, raw := range item.SecondaryPositions {
		mapped, ok := parsePosition(raw)
		if !ok || mapped == pos {
			continue
		}
		secondary = append(secondary, mapped)
	}

	return usecase.ImportedPlayer{
		Name:         name,
		Nationality:  strings.TrimSpace(item.Nationality),
		Pos:          pos,
		SecondaryPos: secondary,
		KitNo:        item.KitNumber,
		OVR:          item.Overall,
		Value:        item.MarketValue,
		BirthYear:    item.BirthYear,
	}, true
}
