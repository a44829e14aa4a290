package llmprovider

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider names accepted by New. All of them speak the OpenAI chat-completions
// wire format and differ only in their default base URL and model.
const (
	ProviderOpenAI     = "openai"
	ProviderDeepSeek   = "deepseek"
	ProviderQwen       = "qwen"
	ProviderOpenRouter = "openrouter"
)

const (
	// DefaultOpenAIModel is the default model for the openai provider
	DefaultOpenAIModel = "gpt-3.5-turbo"

	// DefaultDeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint
	DefaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	// DefaultDeepSeekModel is the default DeepSeek model
	DefaultDeepSeekModel = "deepseek-chat"

	// DefaultQwenBaseURL is the Qwen OpenAI-compatible endpoint
	DefaultQwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	// DefaultQwenModel is the default Qwen model
	DefaultQwenModel = "qwen-plus"

	// DefaultOpenRouterBaseURL is the OpenRouter endpoint
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// ProbeMaxTokens is the token budget of a connectivity probe
	ProbeMaxTokens = 10
)
