package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

// Notifier sends a single message through the external messaging provider
// when an order comes in. Failures are reported to the caller, which logs and
// carries on; order placement never depends on the provider being up.
type Notifier struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// FromEnv reads the provider configuration. A nil notifier is returned when
// the endpoint is not configured, which disables notifications.
func FromEnv() *Notifier {
	endpoint := os.Getenv("NOTIFY_API_URL")
	if endpoint == "" {
		return nil
	}
	return &Notifier{
		Endpoint: endpoint,
		APIKey:   os.Getenv("NOTIFY_API_KEY"),
		Client:   &http.Client{},
	}
}

type messageResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OrderPlaced posts the new-order message to the provider.
func (n *Notifier) OrderPlaced(order models.Order) error {
	payload := map[string]interface{}{
		"to": order.CustomerPhone,
		"message": fmt.Sprintf(
			"Hi %s, your Fashion By Nira order %s has been received. Total: %.2f",
			order.CustomerName, order.OrderRef, order.TotalAmount),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if n.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.APIKey)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach messaging provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("messaging provider error (%d): %s", resp.StatusCode, string(body))
	}

	var msgResp messageResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return fmt.Errorf("failed to parse provider response: %v", err)
	}
	if msgResp.Error != nil {
		return fmt.Errorf("provider error: %s", msgResp.Error.Message)
	}
	return nil
}
