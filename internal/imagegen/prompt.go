package imagegen

import "strings"

// BasePrompt is the fixed instruction sent with every edit request. It stays
// in code and is never shown to or editable by the user.
const BasePrompt = "다음 그림과 이어지는 제품 설명을 토대로, 제품의 실사화 제품 사진을 생성해줘." +
	"글씨는 무시하고 절대 그림에 포함되서는 안돼."

const directivePrefix = "\n\n추가 지시문: "

// BuildPrompt appends the trimmed user directive to the base instruction.
// An empty directive yields the base instruction verbatim.
func BuildPrompt(base, directive string) string {
	directive = strings.TrimSpace(directive)
	if directive == "" {
		return base
	}
	return base + directivePrefix + directive
}
