package nakama

// RPC ids registered with Nakama.
const (
	RpcCreateGame      = "create_game"
	RpcListGames       = "list_games"
	RpcGetGame         = "get_game"
	RpcDeleteGame      = "delete_game"
	RpcUpdateGameInfo  = "update_game_info"
	RpcAddRound        = "add_round"
	RpcUpdateRound     = "update_round"
	RpcDeleteRound     = "delete_round"
	RpcUndoLastRound   = "undo_last_round"
	RpcUpdateSettings  = "update_settings"
	RpcRecalculateGame = "recalculate_game"
	RpcFinishGame      = "finish_game"
	RpcReopenGame      = "reopen_game"
	RpcValidateRound   = "validate_round"
	RpcPreviewRound    = "preview_round"
	RpcGameStatistics  = "game_statistics"
	RpcShareGame       = "share_game"
	RpcGetSharedGame   = "get_shared_game"
)

// Runtime env keys (Nakama runtime.env).
const (
	EnvConfigPath  = "westscore_config_path"
	EnvShareSecret = "westscore_share_secret"
	EnvShareIssuer = "westscore_share_issuer"
)

// gRPC status codes returned in runtime errors.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
	codeUnauthenticated = 16
)
