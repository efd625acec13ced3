// Package gateway streams live solves over websocket. A client asks for a
// disk count, the server runs the sequencer and pushes one step envelope per
// move; disconnecting or sending cancel stops the solve.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"hanoi-lite/hanoi"
	"hanoi-lite/internal/codec"
	"hanoi-lite/internal/ledger"
	"hanoi-lite/tape"
)

// Streaming a solve is O(2^N) messages; keep websocket requests sane.
const maxStreamDisks = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection represents a WebSocket client connection.
type Connection struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan []byte
	Gateway  *Gateway
	LastPing time.Time

	// Closed by readPump on teardown; unblocks every pending sender.
	done chan struct{}

	serverSeq uint64

	mu     sync.Mutex
	cancel context.CancelFunc // active solve, nil when idle
}

// Gateway manages WebSocket connections.
type Gateway struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	nextConnID  uint64
	ledger      ledger.Service
}

func New(ledgerService ledger.Service) *Gateway {
	return &Gateway{
		connections: make(map[string]*Connection),
		ledger:      ledgerService,
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] Upgrade error: %v", err)
		return
	}

	g.mu.Lock()
	g.nextConnID++
	connID := fmt.Sprintf("conn_%d", g.nextConnID)
	c := &Connection{
		ID:       connID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Gateway:  g,
		LastPing: time.Now(),
		done:     make(chan struct{}),
	}
	g.connections[connID] = c
	total := len(g.connections)
	g.mu.Unlock()

	log.Printf("[Gateway] Client connected: %s, total: %d", connID, total)

	go c.readPump()
	go c.writePump()
}

func (g *Gateway) removeConnection(c *Connection) {
	g.mu.Lock()
	delete(g.connections, c.ID)
	total := len(g.connections)
	g.mu.Unlock()
	log.Printf("[Gateway] Client disconnected: %s, total: %d", c.ID, total)
}

func (c *Connection) readPump() {
	defer func() {
		c.stopSolve()
		c.Gateway.removeConnection(c)
		c.Conn.Close()
		close(c.done)
	}()

	c.Conn.SetReadLimit(65536)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		c.LastPing = time.Now()
		return nil
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Gateway] Read error: %v", err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			c.handleMessage(message)
		}
	}
}

func (c *Connection) handleMessage(data []byte) {
	env, err := codec.DecodeClient(data)
	if err != nil {
		log.Printf("[Gateway] Failed to decode from %s: %v", c.ID, err)
		c.sendError(1, "invalid message format")
		return
	}

	switch env.Type {
	case codec.TypeSolveRequest:
		if env.Solve == nil {
			c.sendError(2, "solve request missing body")
			return
		}
		c.startSolve(env.Solve.Disks, env.Solve.Label)
	case codec.TypeCancelRequest:
		c.stopSolve()
	default:
		log.Printf("[Gateway] Unknown message type %q from %s", env.Type, c.ID)
		c.sendError(1, fmt.Sprintf("unknown message type %q", env.Type))
	}
}

func (c *Connection) startSolve(disks int, label string) {
	if disks < 0 || disks > maxStreamDisks {
		c.sendError(3, fmt.Sprintf("disks must be between 0 and %d", maxStreamDisks))
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		c.sendError(4, "a solve is already running")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	go c.runSolve(ctx, disks, label)
}

func (c *Connection) stopSolve() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
}

func (c *Connection) runSolve(ctx context.Context, disks int, label string) {
	defer c.stopSolve()

	solve, err := hanoi.NewSolve(disks)
	if err != nil {
		c.sendError(5, err.Error())
		return
	}

	solveID := uuid.NewString()
	started := time.Now()
	c.sendEnvelope(&codec.SolveStart{
		SolveID:    solveID,
		Disks:      disks,
		Direction:  solve.Direction().String(),
		TotalMoves: solve.Total(),
	})

	recorded := &tape.WireSolveTape{
		TapeVersion: tape.TapeVersion,
		SolveID:     solveID,
		Label:       label,
		Disks:       disks,
		Direction:   solve.Direction().String(),
	}

	var moves uint64
	for {
		select {
		case <-ctx.Done():
			c.sendEnvelope(&codec.SolveEnd{
				SolveID: solveID,
				Disks:   disks,
				Moves:   moves,
				Aborted: true,
			})
			return
		default:
		}

		step, ok, err := solve.Next()
		if err != nil {
			log.Printf("[Gateway] Solve %s failed at move %d: %v", solveID, moves+1, err)
			c.sendError(6, err.Error())
			return
		}
		if !ok {
			break
		}
		moves = step.Count
		ev := codec.StepToEvent(step)
		c.sendEnvelope(ev)
		recorded.Steps = append(recorded.Steps, tape.WireTapeStep{
			Seq:   ev.Seq,
			Kind:  ev.Kind,
			From:  ev.From,
			To:    ev.To,
			Gaps:  ev.Gaps,
			Poles: ev.Poles,
		})
	}

	elapsed := time.Since(started).Milliseconds()
	c.recordSolve(recorded, moves, elapsed)
	c.sendEnvelope(&codec.SolveEnd{
		SolveID:   solveID,
		Disks:     disks,
		Moves:     moves,
		ElapsedMs: elapsed,
	})
}

func (c *Connection) recordSolve(recorded *tape.WireSolveTape, moves uint64, elapsedMs int64) {
	blob, err := json.Marshal(recorded)
	if err != nil {
		log.Printf("[Gateway] Marshal tape for solve %s failed: %v", recorded.SolveID, err)
		blob = nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err = c.Gateway.ledger.RecordSolve(ctx, ledger.SolveRecord{
		SolveID:   recorded.SolveID,
		Label:     recorded.Label,
		Disks:     recorded.Disks,
		Moves:     moves,
		ElapsedMs: elapsedMs,
		CreatedAt: time.Now().UTC(),
		Tape:      blob,
	})
	if err != nil {
		log.Printf("[Gateway] Record solve %s failed: %v", recorded.SolveID, err)
	}
}

func (c *Connection) sendEnvelope(payload any) {
	env, err := codec.Wrap(atomic.AddUint64(&c.serverSeq, 1), payload)
	if err != nil {
		log.Printf("[Gateway] Wrap payload failed: %v", err)
		return
	}
	data, err := codec.Encode(env)
	if err != nil {
		log.Printf("[Gateway] Encode envelope failed: %v", err)
		return
	}
	select {
	case c.Send <- data:
	case <-c.done:
		// Connection torn down; the message is simply lost.
	}
}

func (c *Connection) sendError(code int, msg string) {
	c.sendEnvelope(&codec.ErrorEvent{Code: code, Message: msg})
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
