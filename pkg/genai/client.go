// Package genai wraps the Gemini generateContent REST API for the two drafting
// collaborators: report draft assist and the leadership risk summary. Failures
// are substituted with fixed human-readable strings and never propagated; the
// caller only ever consumes text.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fixed substitution strings surfaced instead of transport or API errors.
const (
	DraftFailure   = "生成失败，请检查网络或配置。"
	DraftEmpty     = "生成内容为空"
	SummaryFailure = "无法生成汇总分析。"
	SummaryEmpty   = "暂无研判结论"
)

type Client struct {
	BaseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient builds a collaborator client. Every request carries the given
// timeout; a hung upstream call fails the request instead of hanging the caller.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
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
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateDraft produces a report body draft from the document kind and
// free-text keywords.
func (c *Client) GenerateDraft(ctx context.Context, reportType, keywords string) string {
	prompt := fmt.Sprintf(
		"你是一名资深的工程监理专家。请根据以下关键词编写一份专业的%s内容。\n要求：条理清晰，符合建筑行业规范，语言客观专业。\n关键词：%s",
		reportType, keywords,
	)
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return DraftFailure
	}
	if text == "" {
		return DraftEmpty
	}
	return text
}

// SummarizeRisks analyses the company-wide important-pending set. events is
// any JSON-marshalable projection of those reports.
func (c *Client) SummarizeRisks(ctx context.Context, events any) string {
	payload, err := json.Marshal(events)
	if err != nil {
		return SummaryFailure
	}
	prompt := "作为公司安全总监，请分析以下项目部直报的重大事件风险，并给出管理决策建议：" + string(payload)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return SummaryFailure
	}
	if text == "" {
		return SummaryEmpty
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generateContent: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
