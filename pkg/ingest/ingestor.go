package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"energialab.xyz/energy-monitor-service/pkg/common"
	"energialab.xyz/energy-monitor-service/pkg/energy"
	z "github.com/Oudwins/zog"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	DefaultStoreTimeout      = 5 * time.Second
	DefaultReconnectInterval = 10 * time.Second
)

// samplePayload is the wire shape on the inbound topic. The float fields
// are pointers so a missing required field is distinguishable from zero;
// unknown fields are ignored.
type samplePayload struct {
	DispositivoID string   `json:"dispositivoId"`
	Timestamp     string   `json:"timestamp"`
	Corrente      *float64 `json:"corrente"`
	Tensao        *float64 `json:"tensao"`
	PotenciaAtiva *float64 `json:"potenciaAtiva"`
}

func validateDeviceID(deviceID *string) z.ZogIssueList {
	var deviceIdValidator = z.String().Min(1).Required()
	return deviceIdValidator.Validate(deviceID)
}

// Ingestor is the long-lived subscription to the inbound sample topic.
// It is constructed and started once by the composition root and holds
// no state other than the broker client; every message is handled
// independently so one slow or broken message never blocks the next.
type Ingestor struct {
	Energy           *energy.Energy
	RateLimiterStore *RateLimiterStore

	BrokerURL         string
	Topic             string
	ClientID          string
	StoreTimeout      time.Duration
	ReconnectInterval time.Duration

	client mqtt.Client
	wg     sync.WaitGroup
}

func (ig *Ingestor) logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameMqttIngest)
}

// Start connects to the broker and keeps the connection alive for the
// process lifetime. Subscription happens in the OnConnect handler, so it
// is re-established after every reconnect. Start does not block on a
// broker that is down; the client keeps retrying at the configured
// interval.
func (ig *Ingestor) Start() error {
	if ig.Energy == nil || ig.Energy.Reading == nil {
		return fmt.Errorf("ingestor requires an energy core with a reading service")
	}

	if ig.StoreTimeout == 0 {
		ig.StoreTimeout = DefaultStoreTimeout
	}
	if ig.ReconnectInterval == 0 {
		ig.ReconnectInterval = DefaultReconnectInterval
	}

	logger := ig.logger()

	opts := mqtt.NewClientOptions().
		AddBroker(ig.BrokerURL).
		SetClientID(ig.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(ig.ReconnectInterval).
		SetMaxReconnectInterval(ig.ReconnectInterval).
		SetOrderMatters(false)

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("Connected to MQTT broker", zap.String("broker", ig.BrokerURL))

		token := client.Subscribe(ig.Topic, 0, ig.HandleMessage)
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error("Failed to subscribe to topic",
				zap.String("topic", ig.Topic), zap.Error(err))
			return
		}
		logger.Info("Subscribed to topic", zap.String("topic", ig.Topic))
	})

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("Lost connection to MQTT broker, reconnecting", zap.Error(err))
	})

	ig.client = mqtt.NewClient(opts)

	token := ig.client.Connect()
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			logger.Error("Initial broker connection failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop disconnects from the broker and waits for in-flight messages.
func (ig *Ingestor) Stop() {
	if ig.client != nil && ig.client.IsConnectionOpen() {
		ig.client.Unsubscribe(ig.Topic)
	}
	if ig.client != nil {
		ig.client.Disconnect(250)
	}
	ig.wg.Wait()
	ig.logger().Info("Ingestor stopped")
}

// HandleMessage dispatches one broker message to its own goroutine.
func (ig *Ingestor) HandleMessage(_ mqtt.Client, msg mqtt.Message) {
	payload := msg.Payload()
	ig.wg.Add(1)
	go func() {
		defer ig.wg.Done()
		ig.ProcessPayload(payload)
	}()
}

// ProcessPayload decodes, validates, normalizes, and persists one sample.
// Every failure is logged and the sample dropped; nothing here may
// terminate the subscription.
func (ig *Ingestor) ProcessPayload(raw []byte) {
	logger := ig.logger()

	var payload samplePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Warn("Dropping undecodable sample payload", zap.Error(err))
		return
	}

	if err := validateDeviceID(&payload.DispositivoID); err != nil {
		logger.Warn("Dropping sample without device id", zap.Reflect("issues", err))
		return
	}

	if payload.Corrente == nil || payload.Tensao == nil || payload.PotenciaAtiva == nil {
		logger.Warn("Dropping sample with missing measurement fields",
			zap.String("device_id", payload.DispositivoID))
		return
	}

	var timestamp time.Time
	if payload.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, payload.Timestamp)
		if err != nil {
			logger.Warn("Dropping sample with unparsable timestamp",
				zap.String("device_id", payload.DispositivoID),
				zap.String("timestamp", payload.Timestamp))
			return
		}
		timestamp = parsed
	}

	if ig.RateLimiterStore != nil && !ig.RateLimiterStore.GetLimiter(payload.DispositivoID).Allow() {
		logger.Warn("Dropping sample over device rate limit",
			zap.String("device_id", payload.DispositivoID))
		return
	}

	storeTimeout := ig.StoreTimeout
	if storeTimeout == 0 {
		storeTimeout = DefaultStoreTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	sample := energy.Sample{
		DeviceID:    payload.DispositivoID,
		Timestamp:   timestamp,
		Current:     *payload.Corrente,
		Voltage:     *payload.Tensao,
		ActivePower: *payload.PotenciaAtiva,
	}

	if _, err := ig.Energy.Reading.IngestSample(ctx, sample); err != nil {
		logger.Warn("Dropping sample that failed ingestion",
			zap.String("device_id", payload.DispositivoID), zap.Error(err))
	}
}
