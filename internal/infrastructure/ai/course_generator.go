package ai

import (
	"context"
	"fmt"
	"log"

	"RunCourse-App/internal/domain/model"
	"RunCourse-App/internal/domain/repository"
)

// openAICourseRepository OpenAI APIを使用してCourseGenerationRepositoryを実装
type openAICourseRepository struct {
	client *OpenAIClient
}

// NewOpenAICourseRepository 新しいopenAICourseRepositoryインスタンスを作成
func NewOpenAICourseRepository(client *OpenAIClient) repository.CourseGenerationRepository {
	return &openAICourseRepository{client: client}
}

// GenerateCourseCandidate プロンプトを投げ、応答テキストからコース候補を抽出する
// API呼び出し失敗・JSON抽出失敗のどちらもエラーとして返し、フォールバックの
// 判断は呼び出し側に委ねる
func (r *openAICourseRepository) GenerateCourseCandidate(ctx context.Context, prompt string) (model.CourseCandidate, error) {
	log.Printf("🤖 OpenAI APIでコースを生成中...")

	content, err := r.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("コース生成に失敗: %w", err)
	}

	obj, err := ExtractJSONObject(content)
	if err != nil {
		return nil, fmt.Errorf("生成テキストからコースを抽出できませんでした: %w", err)
	}

	log.Printf("✅ コース候補を抽出 (応答: %d文字)", len(content))
	return model.CourseCandidate(obj), nil
}
