package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// DefaultCourseModel コース生成に使用するモデル
const DefaultCourseModel = "gpt-4o-search-preview"

// courseSystemPrompt コース生成時のシステムプロンプト
const courseSystemPrompt = "당신은 러닝 코스 생성 전문가입니다. 사용자의 요청에 따라 검색하여 올바른 근거를 바탕으로 답변해야 합니다."

// OpenAIClient OpenAI Chat Completions APIとの通信を担当するクライアント
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient 新しいOpenAIClientインスタンスを作成
// modelが空の場合はデフォルトモデルを使用する
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = DefaultCourseModel
	}

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// GenerateContent プロンプトを投げて生成テキストを取得する
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: courseSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 1500,
	})
	if err != nil {
		return "", fmt.Errorf("APIリクエストに失敗: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("有効なレスポンスが生成されませんでした")
	}

	return resp.Choices[0].Message.Content, nil
}
