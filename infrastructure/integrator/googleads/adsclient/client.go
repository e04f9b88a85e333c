package adsclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=../mocks/adsclient_mock.go -package=mocks

type Client interface {
	// SearchStream executa uma consulta GAQL e devolve as páginas de resultado em stream
	SearchStream(ctx context.Context, customerID, query string) (domain.RowStream, error)
	RefreshToken(ctx context.Context) error
}

type GoogleAdsClient struct {
	Cfg          config.GoogleAds
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &GoogleAdsClient{
		Cfg:          cfg.GoogleAds,
		TokenManager: tokenManager,
		// Sem timeout total: o corpo do searchStream é lido enquanto o relatório é montado.
		// O limite por requisição vem do contexto.
		httpClient: &http.Client{},
	}
}

// RefreshToken obtém um novo access token
func (c *GoogleAdsClient) RefreshToken(ctx context.Context) error {
	return c.TokenManager.RefreshToken(ctx)
}
