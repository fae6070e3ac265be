package usecase

import (
	"context"
	"log"

	"RunCourse-App/internal/domain/model"
	"RunCourse-App/internal/domain/repository"
	"RunCourse-App/internal/domain/service"
)

// CourseGenerateUseCase コース生成パイプラインのインターフェース
type CourseGenerateUseCase interface {
	// GenerateCourse プロンプト構築 → AI生成 →（失敗時フォールバック合成）→
	// ベストエフォートの経路エンリッチ → 正規化 の順でコースを生成する
	GenerateCourse(ctx context.Context, req *model.CourseGenerateRequest) (*model.CourseGenerateResponse, error)
}

// courseGenerateUseCaseImpl CourseGenerateUseCaseの実装
type courseGenerateUseCaseImpl struct {
	generationRepo repository.CourseGenerationRepository // nilの場合はコース生成機能が無効
	promptBuilder  *service.PromptBuilder
	fallback       *service.FallbackCourseService
	enricher       *service.RouteEnrichService // nilの場合は経路エンリッチをスキップ
	normalizer     *service.CourseNormalizer
}

// NewCourseGenerateUseCase 新しいCourseGenerateUseCaseインスタンスを作成
// generationRepoがnilの場合、GenerateCourseはErrGenerationNotConfiguredを返す
// enricherがnilの場合、経路エンリッチは行わない
func NewCourseGenerateUseCase(
	generationRepo repository.CourseGenerationRepository,
	promptBuilder *service.PromptBuilder,
	fallback *service.FallbackCourseService,
	enricher *service.RouteEnrichService,
	normalizer *service.CourseNormalizer,
) CourseGenerateUseCase {
	return &courseGenerateUseCaseImpl{
		generationRepo: generationRepo,
		promptBuilder:  promptBuilder,
		fallback:       fallback,
		enricher:       enricher,
		normalizer:     normalizer,
	}
}

// GenerateCourse コース生成パイプラインを実行する
// AI生成と経路エンリッチの失敗はここで吸収され、呼び出し元には届かない
func (u *courseGenerateUseCaseImpl) GenerateCourse(ctx context.Context, req *model.CourseGenerateRequest) (*model.CourseGenerateResponse, error) {
	if u.generationRepo == nil {
		return nil, model.ErrGenerationNotConfigured
	}

	log.Printf("🚀 コース生成開始 (위치: %s, 거리: %skm)",
		req.FormData.Location, model.FormatNumber(req.FormData.DistanceKm()))

	// Step 1: AI生成（リトライなしの単一試行）。失敗時はフォールバック合成
	prompt := u.promptBuilder.Build(req)
	candidate, err := u.generationRepo.GenerateCourseCandidate(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ AI生成に失敗、フォールバック合成を使用: %v", err)
		candidate = u.fallback.BuildCourseCandidate(req)
	}

	// Step 2: 経路エンリッチ（ベストエフォート）。失敗しても既存のパスを維持する
	if u.enricher != nil {
		if path, err := u.enricher.EnrichPath(ctx, candidate); err != nil {
			log.Printf("⚠️ 経路エンリッチに失敗、既存のパスを維持: %v", err)
		} else {
			candidate.SetPath(path)
		}
	}

	// Step 3: 正規化
	course := u.normalizer.Normalize(candidate, req)

	log.Printf("🎉 コース生成完了 (ウェイポイント: %d点, パス: %d点)",
		len(course.Waypoints), len(course.Path))

	return &model.CourseGenerateResponse{Course: course}, nil
}
