package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  userSummaryResponse `json:"user"`
}

// --- Score submission ---

type submitScoreRequest struct {
	// Game is validated against the closed kind set by the service, not by a
	// struct tag, so the list of games has exactly one definition.
	Game  string `json:"game"  validate:"required"`
	Score int    `json:"score"`
}

type submitScoreResponse struct {
	Message      string `json:"message"`
	NewHighScore bool   `json:"newHighScore"`
}

// --- Questionnaire intake ---

type intakeRequest struct {
	Age      *int     `json:"age"      validate:"omitempty,gte=5,lte=120"`
	Goal     string   `json:"goal"     validate:"required"`
	Concerns []string `json:"concerns"`
	PlayTime string   `json:"playTime" validate:"required"`
}

type intakeResponse struct {
	Message string              `json:"message"`
	User    userSummaryResponse `json:"user"`
}

// --- Profile ---

type progressResponse struct {
	Score  int `json:"score"`
	Played int `json:"played"`
}

type gameProgressResponse struct {
	MemoryMatch   progressResponse `json:"memoryMatch"`
	MathChallenge progressResponse `json:"mathChallenge"`
	ColorMatch    progressResponse `json:"colorMatch"`
	SpeedClick    progressResponse `json:"speedClick"`
}

type questionnaireResponse struct {
	Goal     string   `json:"goal"`
	Concerns []string `json:"concerns"`
	PlayTime string   `json:"playTime"`
}

type profileResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Age           *int                   `json:"age,omitempty"`
	Questionnaire *questionnaireResponse `json:"questionnaire,omitempty"`
	GameProgress  gameProgressResponse   `json:"gameProgress"`
}

// --- Contact ---

type contactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"     validate:"required,email"`
	Mobile    string `json:"mobile"`
	Message   string `json:"message"   validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
