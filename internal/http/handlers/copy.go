package handlers

// uiCopy holds the page strings per locale. Korean is the primary audience;
// English is the fallback.
var uiCopy = map[string]map[string]string{
	"ko": {
		"app_title":               "1. 물체와 물질_제품 제작소",
		"login_heading":           "🔐 로그인",
		"username_label":          "아이디",
		"username_placeholder":    "예: teacher01",
		"password_label":          "접근코드(비밀번호)",
		"login_button":            "로그인",
		"login_failed":            "접근코드가 올바르지 않습니다.",
		"welcome":                 "👋 %s 님 환영합니다.",
		"logout_button":           "로그아웃",
		"studio_heading":          "🎨 직접 제작한 '제품 설명'과 '스케치'로 실사화 모습을 만들어 보아요!",
		"notice":                  "📢 주의! 기회는 단... 3번뿐!! 신중히 버튼을 눌러주세요.🤓",
		"upload_label":            "이미지 업로드 (JPG/PNG/WebP, ≤ 50MB)",
		"description_label":       "제품 설명을 넣어주세요.",
		"description_placeholder": "예) 우리 제품은 연필과 지우개를 합친 제품이야. 해당 제품에 대해서 실사화를 예쁘게 부탁해.",
		"generate_button":         "🖼️ 제품 만들기!",
		"results_heading":         "결과 모아보기",
		"result_caption":          "Result #%d",
		"download_button":         "⬇️ 제품 #%d 저장!",
		"download_all":            "전체 결과 내려받기 (ZIP)",
		"missing_image":           "이미지를 업로드하세요.",
		"generation_error":        "이미지 편집 중 오류: %s",
		"upload_too_large":        "업로드 용량이 제한을 초과했습니다.",
	},
	"en": {
		"app_title":               "1. Objects & Materials — Product Workshop",
		"login_heading":           "🔐 Sign in",
		"username_label":          "Username",
		"username_placeholder":    "e.g. teacher01",
		"password_label":          "Access code (password)",
		"login_button":            "Sign in",
		"login_failed":            "That access code is not correct.",
		"welcome":                 "👋 Welcome, %s.",
		"logout_button":           "Sign out",
		"studio_heading":          "🎨 Turn your own product description and sketch into a realistic photo!",
		"notice":                  "📢 Careful! You only get... 3 tries!! Press the button thoughtfully.🤓",
		"upload_label":            "Upload an image (JPG/PNG/WebP, ≤ 50MB)",
		"description_label":       "Describe your product.",
		"description_placeholder": "e.g. Our product combines a pencil and an eraser. Please render it as a nice realistic photo.",
		"generate_button":         "🖼️ Make the product!",
		"results_heading":         "All results",
		"result_caption":          "Result #%d",
		"download_button":         "⬇️ Save product #%d!",
		"download_all":            "Download everything (ZIP)",
		"missing_image":           "Please upload an image.",
		"generation_error":        "Image edit error: %s",
		"upload_too_large":        "The upload exceeds the size limit.",
	},
}

func copyFor(locale string) map[string]string {
	if t, ok := uiCopy[locale]; ok {
		return t
	}
	return uiCopy["en"]
}
