package i18n

// Translation keys.
const (
	KeySelectTextNotice   = "select-text-notice"
	KeyMenuItemTitle      = "menu-item-title"
	KeySettingsTitle      = "settings-title"
	KeyStyleSetting       = "style-setting"
	KeyStyleSettingDesc   = "style-setting-desc"
	KeyStyleDefault       = "style-default"
	KeyStyleGitHub        = "style-github"
	KeyStyleStackOverflow = "style-stackoverflow"
)

// DefaultLocale is used when the host language has no table.
const DefaultLocale = "en"

// tables maps a two-letter language code to its strings.
var tables = map[string]map[string]string{
	"en": {
		KeySelectTextNotice:   "Please select text to wrap in <kbd> tags.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Kbd style settings",
		KeyStyleSetting:       "Kbd style",
		KeyStyleSettingDesc:   "Choose the visual style for <kbd> tags",
		KeyStyleDefault:       "Default",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"es": {
		KeySelectTextNotice:   "Por favor selecciona texto para envolver en etiquetas <kbd>.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Configuración de Estilo Kbd",
		KeyStyleSetting:       "Estilo Kbd",
		KeyStyleSettingDesc:   "Elige el estilo visual para las etiquetas <kbd>",
		KeyStyleDefault:       "Predeterminado",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"fr": {
		KeySelectTextNotice:   "Veuillez sélectionner du texte à envelopper dans les balises <kbd>.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Paramètres de Style Kbd",
		KeyStyleSetting:       "Style Kbd",
		KeyStyleSettingDesc:   "Choisissez le style visuel pour les balises <kbd>",
		KeyStyleDefault:       "Par défaut",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"de": {
		KeySelectTextNotice:   "Bitte wählen Sie Text aus, um ihn in <kbd>-Tags zu verpacken.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Kbd-Stil-Einstellungen",
		KeyStyleSetting:       "Kbd-Stil",
		KeyStyleSettingDesc:   "Wählen Sie den visuellen Stil für <kbd>-Tags",
		KeyStyleDefault:       "Standard",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"it": {
		KeySelectTextNotice:   "Seleziona il testo da avvolgere nei tag <kbd>.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Impostazioni Stile Kbd",
		KeyStyleSetting:       "Stile Kbd",
		KeyStyleSettingDesc:   "Scegli lo stile visivo per i tag <kbd>",
		KeyStyleDefault:       "Predefinito",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"pt": {
		KeySelectTextNotice:   "Selecione o texto para envolver em tags <kbd>.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Configurações de Estilo Kbd",
		KeyStyleSetting:       "Estilo Kbd",
		KeyStyleSettingDesc:   "Escolha o estilo visual para tags <kbd>",
		KeyStyleDefault:       "Padrão",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"ru": {
		KeySelectTextNotice:   "Пожалуйста, выберите текст для обертывания в теги <kbd>.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Настройки Стиля Kbd",
		KeyStyleSetting:       "Стиль Kbd",
		KeyStyleSettingDesc:   "Выберите визуальный стиль для тегов <kbd>",
		KeyStyleDefault:       "По умолчанию",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"zh": {
		KeySelectTextNotice:   "请选择要用 <kbd> 标签包装的文本。",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Kbd 样式设置",
		KeyStyleSetting:       "Kbd 样式",
		KeyStyleSettingDesc:   "选择 <kbd> 标签的视觉样式",
		KeyStyleDefault:       "默认",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"ja": {
		KeySelectTextNotice:   "<kbd>タグで囲むテキストを選択してください。",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Kbd スタイル設定",
		KeyStyleSetting:       "Kbd スタイル",
		KeyStyleSettingDesc:   "<kbd>タグの視覚スタイルを選択",
		KeyStyleDefault:       "デフォルト",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
	"ko": {
		KeySelectTextNotice:   "<kbd> 태그로 감쌀 텍스트를 선택하세요.",
		KeyMenuItemTitle:      "<kbd>",
		KeySettingsTitle:      "Kbd 스타일 설정",
		KeyStyleSetting:       "Kbd 스타일",
		KeyStyleSettingDesc:   "<kbd> 태그의 시각적 스타일 선택",
		KeyStyleDefault:       "기본값",
		KeyStyleGitHub:        "GitHub",
		KeyStyleStackOverflow: "Stack Overflow",
	},
}
