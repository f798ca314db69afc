package i18n

import "github.com/dmitrijs2005/ospassport/internal/models"

// Texts are the UI strings of one language.
type Texts struct {
	TabAbout, TabInput, TabPassport string

	WelcomeTitle, WelcomeSub  string
	ConceptTitle, ConceptBody string

	ParentCare, ParentCareText string
	StampSaved, RecentStamps   string

	NameLabel, NamePlaceholder string
	AddMemo                    string
	SaveBtn, SavedAlert        string
	SaveFailed                 string
	LastSaved                  string

	QRHint       string
	SimpleReport string
	Back         string
	NotSelected  string
	Guest        string
	OpenFailed   string

	DictationStarted, DictationStopped string
}

var texts = map[Lang]Texts{
	Japanese: {
		TabAbout: "解説", TabInput: "入力", TabPassport: "提示",
		WelcomeTitle:     "どんな些細なことでも、大丈夫ですよ。",
		WelcomeSub:       "あなたは一人ではありません。このアプリは、お子様を評価するものではなく、力を最大限に発揮するための「取扱説明書（パスポート）」です。",
		ConceptTitle:     "「努力」から「戦略」へ",
		ConceptBody:      "「何度言ったらわかるの？」と思ってしまうことの多くは、実は脳の特性（OS）が関係しています。自分たちを責めるのではなく、お子様に合った「設定（戦略）」を一緒に見つけましょう。",
		ParentCare:       "☕ 保護者のためのケア",
		ParentCareText:   "今日も一日お疲れ様です。まずは、今日のお子様（そしてあなた自身！）の頑張りにスタンプを押しましょう！",
		StampSaved:       "スタンプを記録しました！",
		RecentStamps:     "最近のほめ",
		NameLabel:        "👤 お名前 / ニックネーム",
		NamePlaceholder:  "例：ギフ 太郎",
		AddMemo:          "追加メモ（音声入力可）",
		SaveBtn:          "💾 記録を保存する",
		SavedAlert:       "設定を保存しました！",
		SaveFailed:       "保存できませんでした",
		LastSaved:        "最終保存",
		QRHint:           "このQRコードを支援者（保育園・学校・保健師さん）に読み取ってもらってください",
		SimpleReport:     "📄 提出用シンプル表示",
		Back:             "← 戻る",
		NotSelected:      "未選択",
		Guest:            "GUEST",
		OpenFailed:       "リンクを読み取れませんでした。",
		DictationStarted: "🎤 音声入力中…",
		DictationStopped: "⏹️ 音声入力を終了しました",
	},
	English: {
		TabAbout: "About", TabInput: "Input", TabPassport: "Passport",
		WelcomeTitle:     "Whatever it is, it's okay.",
		WelcomeSub:       "You are not alone. This app is not for evaluating your child, but a 'Passport' to help them thrive.",
		ConceptTitle:     "From 'Effort' to 'Strategy'",
		ConceptBody:      "Many things we struggle with are related to our brain's OS. Instead of blaming yourselves, let's find the right 'settings' (strategies) together.",
		ParentCare:       "☕ Parent Care",
		ParentCareText:   "Great job today! Tap a stamp to praise your child (and yourself)!",
		StampSaved:       "Stamp saved!",
		RecentStamps:     "Recent praise",
		NameLabel:        "👤 Name / Nickname",
		NamePlaceholder:  "e.g. Leo",
		AddMemo:          "Additional Memo (Voice OK)",
		SaveBtn:          "💾 Save Data",
		SavedAlert:       "Settings saved!",
		SaveFailed:       "Could not save",
		LastSaved:        "Last saved",
		QRHint:           "Please have your supporter scan this QR code.",
		SimpleReport:     "📄 Simple Report Mode",
		Back:             "← Back",
		NotSelected:      "Not selected",
		Guest:            "GUEST",
		OpenFailed:       "This link could not be read.",
		DictationStarted: "🎤 Listening…",
		DictationStopped: "⏹️ Dictation stopped",
	},
	Portuguese: {
		TabAbout: "Sobre", TabInput: "Entrada", TabPassport: "Passaporte",
		WelcomeTitle:     "Qualquer coisa, está tudo bem.",
		WelcomeSub:       "Você não está sozinho(a). Este app não avalia seu filho(a), é um 'Passaporte' para ajudá-lo(a) a brilhar.",
		ConceptTitle:     "Da 'Esforço' à 'Estratégia'",
		ConceptBody:      "Muitas dificuldades estão ligadas ao 'OS' do cérebro. Em vez de se culpar, vamos encontrar as 'configurações' certas juntos.",
		ParentCare:       "☕ Cuidado com os Pais",
		ParentCareText:   "Bom trabalho hoje! Toque num carimbo para elogiar seu filho (e você mesmo)!",
		StampSaved:       "Carimbo salvo!",
		RecentStamps:     "Elogios recentes",
		NameLabel:        "👤 Nome / Apelido",
		NamePlaceholder:  "ex: Leo",
		AddMemo:          "Anotação (Voz OK)",
		SaveBtn:          "💾 Salvar Dados",
		SavedAlert:       "Configurações salvas!",
		SaveFailed:       "Não foi possível salvar",
		LastSaved:        "Salvo em",
		QRHint:           "Peça para o professor ou médico escanear este QR code.",
		SimpleReport:     "📄 Modo Relatório",
		Back:             "← Voltar",
		NotSelected:      "Não selecionado",
		Guest:            "GUEST",
		OpenFailed:       "Não foi possível ler este link.",
		DictationStarted: "🎤 Ouvindo…",
		DictationStopped: "⏹️ Ditado encerrado",
	},
}

// T returns the UI strings of l, falling back to Japanese.
func T(l Lang) Texts {
	if t, ok := texts[l]; ok {
		return t
	}
	return texts[Japanese]
}

type categoryMeta struct {
	icon   string
	labels map[Lang]string
}

var categories = map[models.CategoryID]categoryMeta{
	models.CategorySensor: {
		icon:   "📡",
		labels: map[Lang]string{Japanese: "センサー（感覚）", English: "Sensors (Senses)", Portuguese: "Sensores (Sentidos)"},
	},
	models.CategoryBattery: {
		icon:   "🔋",
		labels: map[Lang]string{Japanese: "バッテリー（体力・ペース）", English: "Battery (Energy)", Portuguese: "Bateria (Energia)"},
	},
	models.CategoryCommunication: {
		icon:   "💬",
		labels: map[Lang]string{Japanese: "つうしん（言葉・伝え方）", English: "Communication", Portuguese: "Comunicação"},
	},
}

// options is keyed by the stable option keys of models.OptionKeys.
var options = map[string]map[Lang]string{
	"bright_light":  {Japanese: "🕶️ まぶしいの苦手", English: "🕶️ Dislikes bright light", Portuguese: "🕶️ Não gosta de luz forte"},
	"loud_noise":    {Japanese: "🎧 大きな音ビックリ", English: "🎧 Sensitive to loud noise", Portuguese: "🎧 Sensível a barulho"},
	"itchy_clothes": {Japanese: "👕 服のタグがチクチク", English: "👕 Dislikes itchy clothes", Portuguese: "👕 Etiquetas incomodam"},
	"smells":        {Japanese: "👃 においに敏感", English: "👃 Sensitive to smells", Portuguese: "👃 Sensível a cheiros"},

	"tires_easily":   {Japanese: "🔋 疲れやすい", English: "🔋 Tires easily", Portuguese: "🔋 Cansa fácil"},
	"always_running": {Japanese: "⚡ いつも全力ダッシュ", English: "⚡ Always running", Portuguese: "⚡ Sempre correndo"},
	"needs_nap":      {Japanese: "🛌 お昼寝チャージ必須", English: "🛌 Needs nap to recharge", Portuguese: "🛌 Precisa de soneca"},
	"own_pace":       {Japanese: "🐢 じっくりマイペース", English: "🐢 Goes at own pace", Portuguese: "🐢 No seu próprio ritmo"},

	"loves_talking":  {Japanese: "🗣️ おしゃべり大好き", English: "🗣️ Loves to talk", Portuguese: "🗣️ Adora falar"},
	"gestures":       {Japanese: "🤫 言葉より身振り手振り", English: "🤫 Uses gestures more", Portuguese: "🤫 Usa mais gestos"},
	"visual_learner": {Japanese: "👀 見て覚えるのが得意", English: "👀 Visual learner", Portuguese: "👀 Aprende vendo"},
	"drawing":        {Japanese: "🎨 絵や写真で伝えたい", English: "🎨 Communicates via drawing", Portuguese: "🎨 Comunica-se desenhando"},
}

// CategoryIcon returns the pictogram of category c.
func CategoryIcon(c models.CategoryID) string {
	return categories[c].icon
}

// CategoryLabel returns the name of category c in l.
func CategoryLabel(l Lang, c models.CategoryID) string {
	meta, ok := categories[c]
	if !ok {
		return string(c)
	}
	if s, ok := meta.labels[l]; ok {
		return s
	}
	return meta.labels[Japanese]
}

// OptionLabel returns the label of the option at index in category c. The
// boolean is false for stale indices, which must not be rendered.
func OptionLabel(l Lang, c models.CategoryID, index int) (string, bool) {
	key, ok := models.OptionKey(c, index)
	if !ok {
		return "", false
	}
	labels, ok := options[key]
	if !ok {
		return key, true
	}
	if s, ok := labels[l]; ok {
		return s, true
	}
	return labels[Japanese], true
}
