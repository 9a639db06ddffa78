package nakama

import (
	"context"
	"database/sql"

	"westscore/internal/app"
	"westscore/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads configuration and registers the score-keeping RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	path := env[EnvConfigPath]
	if path == "" {
		path = config.DefaultConfigPath
	}
	if err := config.LoadScoreConfig(path); err != nil {
		logger.Warn("Score config %s not loaded, using defaults: %v", path, err)
	}
	cfg := config.GetScoreConfig()

	shareService = app.NewShareService(env[EnvShareSecret], env[EnvShareIssuer], cfg.ShareTTL(), ids, clock)
	if !shareService.Enabled() {
		logger.Warn("%s missing from env, game sharing disabled.", EnvShareSecret)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("WestScore Go module loaded.")
	return nil
}
