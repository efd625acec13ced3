package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"hanoi-lite/hanoi"
	"hanoi-lite/internal/gateway"
	"hanoi-lite/internal/ledger"
	"hanoi-lite/render"
	"hanoi-lite/tape"
)

var (
	flagPlain    bool
	flagQuiet    bool
	flagTapePath string
	flagAddr     string

	rootCmd = &cobra.Command{
		Use:   "hanoi",
		Short: "Memoryless Tower of Hanoi solver",
		Long: `hanoi solves the Tower of Hanoi without recursion and without any
memory of previous moves: each move is deduced from the disks as they
stand right now, plus the parity of the move count.`,
		SilenceUsage: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve <disks>",
		Short: "Solve a game and print every move",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	verifyCmd = &cobra.Command{
		Use:   "verify <tape.json>",
		Short: "Replay a recorded solve tape and check every move",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve live solves over websocket with a solve ledger",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	solveCmd.Flags().BoolVar(&flagPlain, "plain", false, "disable terminal styling")
	solveCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "print only the closing summary")
	solveCmd.Flags().StringVar(&flagTapePath, "tape", "", "write the solve tape JSON to this file")
	rootCmd.AddCommand(solveCmd)

	rootCmd.AddCommand(verifyCmd)

	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	disks, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("disk count %q is not an integer", args[0])
	}

	solve, err := hanoi.NewSolve(disks)
	if err != nil {
		return err
	}

	r := &render.Renderer{Plain: flagPlain}
	out := cmd.OutOrStdout()

	var recorded *tape.SolveTape
	if flagTapePath != "" {
		recorded, err = tape.Generate(tape.SolveSpec{Disks: disks})
		if err != nil {
			return err
		}
	}

	if !flagQuiet {
		board, _ := hanoi.NewBoard(disks)
		fmt.Fprint(out, r.Diagram(board.Snapshot()))
		fmt.Fprintln(out)
	}

	var moves uint64
	for {
		step, ok, err := solve.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		moves = step.Count
		if flagQuiet {
			continue
		}
		fmt.Fprint(out, r.DescribeStep(step, solve.Direction()))
		fmt.Fprintln(out)
		fmt.Fprint(out, r.Diagram(step.Board))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, r.Summary(disks, moves))

	if recorded != nil {
		data, err := json.MarshalIndent(recorded, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagTapePath, data, 0o644); err != nil {
			return fmt.Errorf("write tape: %w", err)
		}
		fmt.Fprintf(out, "tape written to %s (solve %s)\n", flagTapePath, recorded.SolveID)
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var tp tape.SolveTape
	if err := json.Unmarshal(data, &tp); err != nil {
		return fmt.Errorf("parse tape: %w", err)
	}
	if err := tape.Verify(&tp); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "tape %s ok: %d disks, %d moves\n", tp.SolveID, tp.Disks, len(tp.Steps))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ledgerService, ledgerMode, err := ledger.NewServiceFromEnv()
	if err != nil {
		return fmt.Errorf("init ledger service: %w", err)
	}
	defer ledgerService.Close()

	gw := gateway.New(ledgerService)
	ledgerHTTP := ledger.NewHTTPHandler(ledgerService)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	ledgerHTTP.RegisterRoutes(mux)

	log.Printf("[Server] Ledger mode: %s", ledgerMode)
	log.Printf("[Server] Starting WebSocket server on %s", flagAddr)
	return http.ListenAndServe(flagAddr, mux)
}
