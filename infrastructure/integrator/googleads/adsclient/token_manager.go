package adsclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
)

// TokenManager gerencia o access token OAuth2 da API do Google Ads.
// O estado do token fica aqui e não na configuração, que é imutável.
type TokenManager struct {
	cfg         config.GoogleAds
	httpClient  *http.Client
	mutex       sync.Mutex
	accessToken string
	expiresAt   time.Time
	now         func() time.Time
	stopRefresh chan struct{}
	stopOnce    sync.Once
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg.GoogleAds,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		accessToken: cfg.GoogleAds.AccessToken,
		now:         time.Now,
		stopRefresh: make(chan struct{}),
	}
}

// canRefresh indica se há credenciais para renovar o token
func (tm *TokenManager) canRefresh() bool {
	return tm.cfg.RefreshToken != "" && tm.cfg.ClientID != ""
}

// AccessToken retorna um token válido, renovando-o se necessário
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	if tm.accessToken != "" && (!tm.canRefresh() || tm.now().Before(tm.expiresAt)) {
		return tm.accessToken, nil
	}

	if !tm.canRefresh() {
		return "", fmt.Errorf("nenhum access token ou refresh token configurado")
	}

	if err := tm.refreshTokenInternal(ctx); err != nil {
		return "", err
	}

	return tm.accessToken, nil
}

// RefreshToken força a obtenção de um novo access token
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	if !tm.canRefresh() {
		return fmt.Errorf("refresh token não configurado, não é possível renovar o access token")
	}

	return tm.refreshTokenInternal(ctx)
}

// refreshTokenInternal deve ser chamado com o mutex adquirido
func (tm *TokenManager) refreshTokenInternal(ctx context.Context) error {
	logrus.Debug("Renovando access token do Google Ads...")

	tokenResponse, err := RequestAccessToken(
		ctx,
		tm.httpClient,
		tm.cfg.TokenURL,
		tm.cfg.ClientID,
		tm.cfg.ClientSecret,
		tm.cfg.RefreshToken,
	)
	if err != nil {
		return fmt.Errorf("erro ao renovar access token: %w", err)
	}

	tm.accessToken = tokenResponse.AccessToken
	tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResponse.ExpiresIn)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).Info("Access token do Google Ads renovado com sucesso")

	return nil
}

// ExpiresAt retorna quando o token atual deve ser renovado
func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()
	return tm.expiresAt
}

// StartAutoRefresh mantém o token renovado em background até StopAutoRefresh
func (tm *TokenManager) StartAutoRefresh() {
	if !tm.canRefresh() {
		logrus.Info("Refresh token não configurado, renovação automática desabilitada")
		return
	}

	if err := tm.RefreshToken(context.Background()); err != nil {
		logrus.Errorf("Erro ao iniciar o token: %v", err)
	}

	retryInterval := 1 * time.Minute
	timer := time.NewTimer(tm.nextRefreshIn(retryInterval))
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			logrus.Debug("Iniciando renovação periódica do token do Google Ads")
			if err := tm.RefreshToken(context.Background()); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				timer.Reset(retryInterval)
				continue
			}
			timer.Reset(tm.nextRefreshIn(retryInterval))
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

func (tm *TokenManager) nextRefreshIn(fallback time.Duration) time.Duration {
	wait := time.Until(tm.ExpiresAt())
	if wait <= 0 {
		return fallback
	}
	return wait
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	tm.stopOnce.Do(func() {
		close(tm.stopRefresh)
	})
}
