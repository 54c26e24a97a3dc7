package config

import "time"

// DefaultSampleCode is the editor's initial contents
const DefaultSampleCode = `public class SmellyClass {
    // 1. Primitive Obsession
    private int id;
    private String name;
    private String email;
    // ...

    // 3. Long Method
    public void complexLogic(int type) {
        System.out.println("Start");
        int result = 0;
        switch (type) {
            case 1: result = 10; break;
            case 2: result = 20; break;
            case 3: result = 30; break;
            case 4: result = 40; break;
            case 5: result = 50; break;
            case 6: result = 60; break;
        }
        // ... more logic ...
    }
}`

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "javasmells",
			Version:     "1.0.0",
			Description: "Code smell analysis client",
		},
		Backend: BackendConfig{
			URL:         "http://localhost:8000",
			AnalyzePath: "/analyze",
			Timeout:     0,
			Retry: RetryConfig{
				MaxAttempts:   0,
				BackoffFactor: 1.5,
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      5 * time.Second,
				RetryOnStatus: []int{502, 503, 504},
			},
		},
		Server: ServerConfig{
			Listen:                  ":5173",
			APIProxy:                true,
			RateLimitEnabled:        false,
			RateLimitRequestsPerSec: 2,
			RateLimitBurst:          5,
			ShutdownTimeout:         10 * time.Second,
		},
		Input: InputConfig{
			MaxLines:   500,
			SampleCode: DefaultSampleCode,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"**/generated/**", "**/target/**", "**/build/**",
			},
		},
		Output: OutputConfig{
			Formats:            []string{"text"},
			OutputDir:          ".",
			IncludeSuggestions: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
