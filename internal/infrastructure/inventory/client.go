// Package inventory implementa el cliente HTTP del servicio externo de
// inventario, dueño de los productos y del stock. El backend nunca muta
// productos directamente: solo ajusta/restaura stock por lotes y lee el listado.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Hannia06H/ProyectoArq/internal/application/dto"
	"github.com/Hannia06H/ProyectoArq/internal/application/sales"
	"github.com/Hannia06H/ProyectoArq/internal/domain"
	"github.com/Hannia06H/ProyectoArq/pkg/config"
)

var _ sales.InventoryGateway = (*Client)(nil)

// Client cliente JSON del servicio de inventario. El http.Client es único
// por proceso y acotado por timeout: un servicio lento no puede colgar una
// petición indefinidamente (timeout durante la reserva = reserva fallida).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con la configuración del servicio.
func NewClient(cfg config.InventoryConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// stockItemWire forma de cada item en las llamadas por lotes.
type stockItemWire struct {
	ID       string `json:"id"`
	Cantidad int    `json:"cantidad"`
}

type batchRequest struct {
	Items []stockItemWire `json:"items"`
}

// errorBody cuerpo de error del servicio de inventario.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// AdjustStock descuenta stock por lotes (reserva). Un status distinto de 200
// se devuelve como *sales.UpstreamError con el status y mensaje originales;
// un fallo de transporte o timeout se envuelve en ErrInventoryDown.
func (c *Client) AdjustStock(ctx context.Context, items []sales.StockItem) error {
	return c.postBatch(ctx, "/api/productos/ajustar-stock", items)
}

// RestoreStock devuelve stock reservado (compensación). Mismo contrato de
// errores que AdjustStock; decidir si el fallo se traga es asunto del caso de uso.
func (c *Client) RestoreStock(ctx context.Context, items []sales.StockItem) error {
	return c.postBatch(ctx, "/api/productos/restaurar-stock", items)
}

// ListProducts lee el listado de productos (solo lectura).
func (c *Client) ListProducts(ctx context.Context) ([]dto.Producto, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/productos", nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInventoryDown, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &sales.UpstreamError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	var productos []dto.Producto
	if err := json.NewDecoder(resp.Body).Decode(&productos); err != nil {
		return nil, fmt.Errorf("decodificar productos: %w", err)
	}
	return productos, nil
}

func (c *Client) postBatch(ctx context.Context, path string, items []sales.StockItem) error {
	wire := make([]stockItemWire, 0, len(items))
	for _, it := range items {
		wire = append(wire, stockItemWire{ID: it.ProductID, Cantidad: it.Cantidad})
	}
	body, err := json.Marshal(batchRequest{Items: wire})
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInventoryDown, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &sales.UpstreamError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// readErrorMessage extrae el mensaje del cuerpo de error del servicio
// ({"message": ...} o {"error": ...}); si no se puede, un mensaje genérico.
func readErrorMessage(r io.Reader) string {
	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "error del servicio de inventario"
}
