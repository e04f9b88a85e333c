package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const opSearchStream = "searchStream"

// streamAPI decodifica números como json.Number para não perder precisão em IDs int64
var streamAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type searchStreamRequest struct {
	Query string `json:"query"`
}

// searchStreamBatch é um elemento do array devolvido pelo searchStream.
// Erros no meio do stream chegam como elemento com o campo "error".
type searchStreamBatch struct {
	Results   []domain.Row            `json:"results"`
	FieldMask string                  `json:"fieldMask"`
	RequestID string                  `json:"requestId"`
	Error     *adsdomain.ErrorDetails `json:"error"`
}

func (c *GoogleAdsClient) SearchStream(ctx context.Context, customerID, query string) (domain.RowStream, error) {
	return c.searchStream(ctx, customerID, query, true)
}

func (c *GoogleAdsClient) searchStream(ctx context.Context, customerID, query string, retryOnExpired bool) (domain.RowStream, error) {
	token, err := c.TokenManager.AccessToken(ctx)
	if err != nil {
		return nil, domain.NewReportError(domain.ErrAuthentication, opSearchStream, err).WithCustomer(customerID)
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.URL(), customerID)

	payload, err := json.Marshal(searchStreamRequest{Query: query})
	if err != nil {
		return nil, domain.NewReportError(domain.ErrQuery, opSearchStream, err).WithCustomer(customerID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, domain.NewReportError(domain.ErrQuery, opSearchStream, err).WithCustomer(customerID)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("developer-token", c.Cfg.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, domain.NewReportError(domain.ErrStream, opSearchStream, err).WithCustomer(customerID)
	}

	if resp.StatusCode == http.StatusOK {
		return newBatchStream(resp.Body), nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewReportError(domain.ErrStream, opSearchStream, fmt.Errorf("erro ao ler resposta: %w", err)).WithCustomer(customerID)
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.IsTokenExpired() && retryOnExpired {
		logrus.WithField("customer_id", customerID).Warn("Token expirado detectado pela API do Google Ads, renovando")
		refreshErr := c.TokenManager.RefreshToken(ctx)
		if refreshErr == nil {
			return c.searchStream(ctx, customerID, query, false)
		}
		logrus.WithError(refreshErr).Error("Erro ao renovar token expirado")
	}

	return nil, classifyErrorResponse(resp.StatusCode, body, errorResp).WithCustomer(customerID)
}

// ParseErrorResponse tenta parsear um erro da API do Google Ads
func ParseErrorResponse(body []byte) (*adsdomain.ErrorResponse, error) {
	var errorResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// classifyErrorResponse converte o status HTTP no tipo de erro do relatório
func classifyErrorResponse(statusCode int, body []byte, errorResp *adsdomain.ErrorResponse) *domain.ReportError {
	cause := fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
	if errorResp != nil && errorResp.Error.Status != "" {
		cause = fmt.Errorf("erro na resposta da API. Status: %d, %s", statusCode, errorResp.Summary())
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return domain.NewReportError(domain.ErrAuthentication, opSearchStream, cause)
	case statusCode == http.StatusBadRequest || statusCode == http.StatusNotFound:
		return domain.NewReportError(domain.ErrQuery, opSearchStream, cause)
	default:
		return domain.NewReportError(domain.ErrStream, opSearchStream, cause)
	}
}

// batchStream lê o array JSON do searchStream um elemento por vez
type batchStream struct {
	body io.ReadCloser
	iter *jsoniter.Iterator
	done bool
}

func newBatchStream(body io.ReadCloser) *batchStream {
	return &batchStream{
		body: body,
		iter: jsoniter.Parse(streamAPI, body, 4096),
	}
}

func (s *batchStream) Next() (*domain.RowBatch, error) {
	if s.done {
		return nil, io.EOF
	}

	if !s.iter.ReadArray() {
		s.done = true
		if s.iter.Error != nil {
			return nil, s.streamError(s.iter.Error)
		}
		return nil, io.EOF
	}

	var element searchStreamBatch
	s.iter.ReadVal(&element)
	if s.iter.Error != nil {
		s.done = true
		return nil, s.streamError(s.iter.Error)
	}

	if element.Error != nil {
		s.done = true
		failure := &adsdomain.ErrorResponse{Error: *element.Error}
		return nil, s.streamError(errors.New(failure.Summary()))
	}

	if element.Results == nil {
		element.Results = make([]domain.Row, 0)
	}

	return &domain.RowBatch{
		Results:   element.Results,
		FieldMask: element.FieldMask,
		RequestID: element.RequestID,
	}, nil
}

func (s *batchStream) streamError(err error) error {
	return domain.NewReportError(domain.ErrStream, opSearchStream, fmt.Errorf("erro ao ler página do stream: %w", err))
}

func (s *batchStream) Close() error {
	s.done = true
	return s.body.Close()
}
