package gemini

import (
	"bytes"
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const symptomPromptTemplate = `You are a medical triage assistant. A patient describes their symptoms below.
Respond with ONLY a JSON object, no other text, in this exact shape:
{"probable_causes": ["..."], "severity": "mild|moderate|severe", "recommendation": "...", "disclaimer": "..."}

Symptoms: %s`

const reportPromptTemplate = `You are a medical report analyst. The text of a patient's medical report is below.
Respond with ONLY a JSON object, no other text, in this exact shape:
{"summary": "...", "abnormal_values": [{"term": "...", "value": "...", "normal_range": "...", "issue": "..."}], "possible_conditions": ["..."], "recommendation": "...", "disclaimer": "..."}

Report text:
%s`

// Client calls the generative language REST API. All outbound calls share a
// token-bucket limiter so background report analysis cannot exhaust the API
// quota of interactive triage requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
	log        *zap.Logger
}

func NewClient(cfg *config.InternalConfig, log *zap.Logger) contracts.AIClient {
	timeout := time.Duration(cfg.AI.HTTPTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.AI.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.AI.BaseUrl, "/"),
		apiKey:     cfg.AI.ApiKey,
		model:      cfg.AI.Model,
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps)),
		log:        log,
	}
}

func (c *Client) AnalyzeSymptoms(ctx context.Context, symptoms string) (*contracts.SymptomAnalysis, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(symptomPromptTemplate, symptoms))
	if err != nil {
		return nil, err
	}

	analysis, err := parseSymptomAnalysis(raw)
	if err != nil {
		c.log.Error("gemini.AnalyzeSymptoms unparseable payload",
			zap.String("payload", raw),
			zap.Error(err))
		return nil, exceptions.ErrAIResponseInvalid(err)
	}
	return analysis, nil
}

func (c *Client) AnalyzeReport(ctx context.Context, reportText string) (*contracts.ReportAnalysis, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(reportPromptTemplate, reportText))
	if err != nil {
		return nil, err
	}

	analysis, err := parseReportAnalysis(raw)
	if err != nil {
		c.log.Error("gemini.AnalyzeReport unparseable payload",
			zap.String("payload", raw),
			zap.Error(err))
		return nil, exceptions.ErrAIResponseInvalid(err)
	}
	return analysis, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrAIRequestFailed(err)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrAIRequestFailed(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrAIRequestFailed(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrAIRequestFailed(err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", exceptions.ErrAIRequestFailed(fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", exceptions.ErrAIResponseInvalid(err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", exceptions.ErrAIResponseInvalid(fmt.Errorf("no candidates in response"))
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences removes a surrounding markdown code fence; models often wrap
// JSON in ```json blocks despite the prompt.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func parseSymptomAnalysis(raw string) (*contracts.SymptomAnalysis, error) {
	var analysis contracts.SymptomAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &analysis); err != nil {
		return nil, err
	}
	if analysis.Recommendation == "" && len(analysis.ProbableCauses) == 0 {
		return nil, fmt.Errorf("analysis payload missing required fields")
	}

	switch analysis.Severity {
	case constvars.SeverityMild, constvars.SeverityModerate, constvars.SeveritySevere:
	default:
		analysis.Severity = constvars.SeverityModerate
	}
	return &analysis, nil
}

func parseReportAnalysis(raw string) (*contracts.ReportAnalysis, error) {
	var analysis contracts.ReportAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &analysis); err != nil {
		return nil, err
	}
	if analysis.Summary == "" {
		return nil, fmt.Errorf("analysis payload missing summary")
	}
	return &analysis, nil
}
