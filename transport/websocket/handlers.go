package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-server/internal/entity"
	"github.com/playgrid/tictactoe-server/internal/tictactoe"
)

func (that *Server) handleConnect(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	gameID := ""
	if payloadReq.Game != nil {
		gameID = payloadReq.Game.ID
	}

	game, err := that.play.GetOrCreateGame(ctx, gameID, payloadReq.WithBot)
	if err != nil {
		log.Error("failed to get or create game", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to get or create game")
	}

	sess.gameID = game.ID

	score, err := that.play.GetScore(ctx, game.ID)
	if err != nil {
		log.Error("failed to load score", "gameID", game.ID, "error", err)
		score = entity.Score{}
	}

	log.Info("session connected", "gameID", game.ID)

	return that.sendState(sess, msg.Action, game, score)
}

func (that *Server) handleGameTurn(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "connect first")
	}

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Cell == nil {
		log.Error("cell is missing in payload")
		return that.sendErrorResponse(sess, msg.Action, "cell is required")
	}

	game, score, err := that.play.MakeTurn(ctx, sess.gameID, *payloadReq.Cell)

	// rejected moves leave the session untouched; report them in-band
	if errors.Is(err, tictactoe.ErrCellOccupied) || errors.Is(err, tictactoe.ErrInvalidCell) || errors.Is(err, tictactoe.ErrGameFinished) {
		return that.sendErrorResponse(sess, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to make turn", "gameID", sess.gameID, "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to make turn")
	}

	log.Info("turn made", "gameID", game.ID, "cell", *payloadReq.Cell)

	return that.sendState(sess, msg.Action, game, score)
}

func (that *Server) handleNewGame(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "connect first")
	}

	game, score, err := that.play.StartNextGame(ctx, sess.gameID)
	if err != nil {
		log.Error("failed to start next game", "gameID", sess.gameID, "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to start next game")
	}

	log.Info("next game started", "gameID", game.ID, "starter", game.StartingMark)

	return that.sendState(sess, msg.Action, game, score)
}

func (that *Server) handleResetMatch(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleResetMatch")

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "connect first")
	}

	game, score, err := that.play.ResetMatch(ctx, sess.gameID)
	if err != nil {
		log.Error("failed to reset match", "gameID", sess.gameID, "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to reset match")
	}

	log.Info("match reset", "gameID", game.ID)

	return that.sendState(sess, msg.Action, game, score)
}

func (that *Server) sendState(sess *session, action string, game *entity.Game, score entity.Score) error {
	payload := Payload{
		Game:  game,
		Score: &score,
	}

	if err := that.sendMessage(sess, action, payload); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
