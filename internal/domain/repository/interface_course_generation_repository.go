package repository

import (
	"context"

	"RunCourse-App/internal/domain/model"
)

// CourseGenerationRepository 生成AIによるコース候補生成のインターフェース
type CourseGenerationRepository interface {
	// GenerateCourseCandidate プロンプトを生成AIに投げ、応答テキストから抽出した
	// コース候補を返す。応答が得られない・JSONが抽出できない場合はエラーを返す
	GenerateCourseCandidate(ctx context.Context, prompt string) (model.CourseCandidate, error)
}
