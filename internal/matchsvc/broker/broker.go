package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/nrdev/scrim-services/internal/comm"
	"github.com/nrdev/scrim-services/internal/matchsvc/models"
	"github.com/nrdev/scrim-services/internal/matchsvc/service"
)

// Broker feeds result submissions arriving from the gateway service into
// the progression engine and answers on the reply subject when one is set.
type Broker struct {
	Conn            *nats.Conn
	ProgressService *service.ProgressService
	GameService     *service.GameService
}

func NewBroker(nc *nats.Conn, progressService *service.ProgressService, gameService *service.GameService) *Broker {
	return &Broker{
		Conn:            nc,
		ProgressService: progressService,
		GameService:     gameService,
	}
}

// handles message coming from the gateway
func (b *Broker) handleMessage(msgNat *nats.Msg) {
	msg := &comm.SvcMessage{}
	err := json.Unmarshal(msgNat.Data, &msg)
	if err != nil {
		log.Errorf("Error nats message %s", err)
		return
	}

	switch msg.Type {
	case "save-result":
		result := &models.MatchResult{}
		err := json.Unmarshal(msg.Data, result)
		if err != nil {
			log.Errorf("Error decoding result: %s", err)
			b.reply(msgNat, comm.ResultAck{Error: "bad result payload"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		out, err := b.ProgressService.SaveResult(ctx, result.GameID, result)
		if err != nil {
			log.Errorf("Error [ProgressService.SaveResult] game %s: %s", result.GameID, err)
			b.reply(msgNat, comm.ResultAck{GameID: result.GameID, Error: err.Error()})
			return
		}
		b.reply(msgNat, comm.ResultAck{
			GameID:     out.GameID,
			IsComplete: out.IsComplete,
			HasNext:    out.HasNext,
		})
	case "init-games":
		req := &comm.InitGamesRequest{}
		err := json.Unmarshal(msg.Data, req)
		if err != nil {
			log.Errorf("Error decoding init request: %s", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := b.GameService.InitializeGames(ctx, req.MatchID); err != nil {
			log.Errorf("Error [GameService.InitializeGames] match %s: %s", req.MatchID, err)
		}
	default:
		log.Warnf("unknown message type %q", msg.Type)
	}
}

func (b *Broker) reply(msgNat *nats.Msg, ack comm.ResultAck) {
	if msgNat.Reply == "" {
		return
	}
	data, err := json.Marshal(ack)
	if err != nil {
		log.Errorf("Error encoding ack %s", err)
		return
	}
	if err := msgNat.Respond(data); err != nil {
		log.Errorf("Error publishing ack %s", err)
	}
}

// SubscribeGateway consumes result traffic; a queue group keeps one
// instance handling each message when the service is scaled out.
func (b *Broker) SubscribeGateway(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.QueueSubscribe(topic, "matchsvc", func(msg *nats.Msg) {
		b.handleMessage(msg)
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
