package nakama

import (
	"context"
	"database/sql"
	"errors"

	"westscore/internal/app"
	"westscore/internal/config"
	"westscore/internal/domain"
	"westscore/internal/ports"
	"westscore/internal/ports/system"

	"github.com/heroiclabs/nakama-common/runtime"
)

var (
	ids   ports.IDGenerator = system.UUIDGenerator{}
	clock ports.Clock       = system.Clock{}
	// shareService is configured by InitModule; nil disables sharing.
	shareService *app.ShareService

	errNoUser = errors.New("no user in context")
)

type rpcFunc func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// gameHandler runs one use-case for the calling user and returns the response value.
type gameHandler func(ctx context.Context, svc *app.GameService, userID, payload string) (interface{}, error)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]rpcFunc{
		RpcCreateGame:      withGameService(RpcCreateGame, handleCreateGame),
		RpcListGames:       withGameService(RpcListGames, handleListGames),
		RpcGetGame:         withGameService(RpcGetGame, handleGetGame),
		RpcDeleteGame:      withGameService(RpcDeleteGame, handleDeleteGame),
		RpcUpdateGameInfo:  withGameService(RpcUpdateGameInfo, handleUpdateGameInfo),
		RpcAddRound:        withGameService(RpcAddRound, handleAddRound),
		RpcUpdateRound:     withGameService(RpcUpdateRound, handleUpdateRound),
		RpcDeleteRound:     withGameService(RpcDeleteRound, handleDeleteRound),
		RpcUndoLastRound:   withGameService(RpcUndoLastRound, gameAction((*app.GameService).UndoLastRound)),
		RpcUpdateSettings:  withGameService(RpcUpdateSettings, handleUpdateSettings),
		RpcRecalculateGame: withGameService(RpcRecalculateGame, gameAction((*app.GameService).RecalculateGame)),
		RpcFinishGame:      withGameService(RpcFinishGame, gameAction((*app.GameService).FinishGame)),
		RpcReopenGame:      withGameService(RpcReopenGame, gameAction((*app.GameService).ReopenGame)),
		RpcValidateRound:   withGameService(RpcValidateRound, handleValidateRound),
		RpcPreviewRound:    withGameService(RpcPreviewRound, handlePreviewRound),
		RpcGameStatistics:  withGameService(RpcGameStatistics, handleStatistics),
		RpcShareGame:       withGameService(RpcShareGame, handleShareGame),
		RpcGetSharedGame:   rpcGetSharedGame,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

// gameServiceFor builds a GameService over the storage object of userID.
func gameServiceFor(nk storageEngine, userID string) *app.GameService {
	cfg := config.GetScoreConfig()
	store := NewNakamaGameStore(nk, cfg.StorageCollection, cfg.StorageKey, userID)
	return app.NewGameService(store, ids, clock, cfg, nil)
}

func withGameService(name string, h gameHandler) rpcFunc {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if userID == "" {
			return "", toRuntimeError(logger, name, userID, errNoUser)
		}

		res, err := h(ctx, gameServiceFor(nk, userID), userID, payload)
		if err != nil {
			return "", toRuntimeError(logger, name, userID, err)
		}
		return encodeResponse(res)
	}
}

// gameAction adapts a use-case that only needs the game id.
func gameAction(fn func(*app.GameService, context.Context, string) (domain.Game, error)) gameHandler {
	return func(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
		var req gameRequest
		if err := decodeGameRequest(payload, &req); err != nil {
			return nil, err
		}
		return fn(svc, ctx, req.GameID)
	}
}

func decodeGameRequest(payload string, req *gameRequest) error {
	if err := decodePayload(payload, req); err != nil {
		return err
	}
	return requireField("gameId", req.GameID)
}

func handleCreateGame(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	var req app.GameInput
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	return svc.CreateGame(ctx, req)
}

func handleListGames(ctx context.Context, svc *app.GameService, _ string, _ string) (interface{}, error) {
	games, err := svc.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return gameListResponse{Games: games}, nil
}

func handleGetGame(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	var req gameRequest
	if err := decodeGameRequest(payload, &req); err != nil {
		return nil, err
	}
	return svc.GetGame(ctx, req.GameID)
}

func handleDeleteGame(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	var req gameRequest
	if err := decodeGameRequest(payload, &req); err != nil {
		return nil, err
	}
	if err := svc.DeleteGame(ctx, req.GameID); err != nil {
		return nil, err
	}
	return deleteResponse{Deleted: true}, nil
}

func handleUpdateGameInfo(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	var req gameInfoRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := requireField("gameId", req.GameID); err != nil {
		return nil, err
	}
	return svc.UpdateGameInfo(ctx, req.GameID, req.GameInfo)
}

func decodeRoundRequest(payload string, needRound bool) (roundRequest, error) {
	var req roundRequest
	if err := decodePayload(payload, &req); err != nil {
		return req, err
	}
	if err := requireField("gameId", req.GameID); err != nil {
		return req, err
	}
	if needRound {
		if err := requireField("roundId", req.RoundID); err != nil {
			return req, err
		}
	}
	return req, nil
}

func handleAddRound(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	req, err := decodeRoundRequest(payload, false)
	if err != nil {
		return nil, err
	}
	return svc.AddRound(ctx, req.GameID, req.Round)
}

func handleUpdateRound(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	req, err := decodeRoundRequest(payload, true)
	if err != nil {
		return nil, err
	}
	return svc.UpdateRound(ctx, req.GameID, req.RoundID, req.Round)
}

func handleDeleteRound(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	req, err := decodeRoundRequest(payload, true)
	if err != nil {
		return nil, err
	}
	return svc.DeleteRound(ctx, req.GameID, req.RoundID)
}

func handleUpdateSettings(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	var req settingsRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, err
	}
	if err := requireField("gameId", req.GameID); err != nil {
		return nil, err
	}
	return svc.UpdateSettings(ctx, req.GameID, req.Settings)
}

func handleValidateRound(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	req, err := decodeRoundRequest(payload, false)
	if err != nil {
		return nil, err
	}
	return svc.ValidateRound(ctx, req.GameID, req.Round)
}

func handlePreviewRound(ctx context.Context, svc *app.GameService, _ string, payload string) (interface{}, error) {
	req, err := decodeRoundRequest(payload, false)
	if err != nil {
		return nil, err
	}
	return svc.PreviewRound(ctx, req.GameID, req.Round)
}

func handleStatistics(ctx context.Context, svc *app.GameService, _ string, _ string) (interface{}, error) {
	return svc.Statistics(ctx)
}

func handleShareGame(ctx context.Context, svc *app.GameService, userID, payload string) (interface{}, error) {
	var req gameRequest
	if err := decodeGameRequest(payload, &req); err != nil {
		return nil, err
	}
	// Only existing games can be shared.
	if _, err := svc.GetGame(ctx, req.GameID); err != nil {
		return nil, err
	}
	return shareService.Issue(userID, req.GameID)
}

// rpcGetSharedGame returns the game a share token points to. The caller does not
// need to own it.
func rpcGetSharedGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	callerID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req sharedGameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcGetSharedGame, callerID, err)
	}
	if err := requireField("token", req.Token); err != nil {
		return "", toRuntimeError(logger, RpcGetSharedGame, callerID, err)
	}

	claims, err := shareService.Verify(req.Token)
	if err != nil {
		return "", toRuntimeError(logger, RpcGetSharedGame, callerID, err)
	}

	game, err := gameServiceFor(nk, claims.OwnerID).GetGame(ctx, claims.GameID)
	if err != nil {
		return "", toRuntimeError(logger, RpcGetSharedGame, callerID, err)
	}
	return encodeResponse(game)
}

// toRuntimeError logs err and maps it onto a Nakama runtime error code.
func toRuntimeError(logger runtime.Logger, rpc, userID string, err error) error {
	var code int
	switch {
	case errors.Is(err, errBadPayload),
		errors.Is(err, domain.ErrInvalidRound),
		errors.Is(err, domain.ErrInvalidSettings),
		errors.Is(err, app.ErrInvalidGameInput):
		code = codeInvalidArgument
	case errors.Is(err, domain.ErrNotFound):
		code = codeNotFound
	case errors.Is(err, errNoUser),
		errors.Is(err, app.ErrShareDisabled),
		errors.Is(err, app.ErrInvalidShareToken):
		code = codeUnauthenticated
	default:
		logger.Error("%s [User:%s]: %v", rpc, userID, err)
		return runtime.NewError("Internal error", codeInternal)
	}

	logger.Warn("%s [User:%s]: %v", rpc, userID, err)
	return runtime.NewError(err.Error(), code)
}
