package app

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/pretty"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
	"go.trai.ch/explorer/internal/tui"
	"go.trai.ch/zerr"
)

// NodeReport is the state of one derived node.
type NodeReport struct {
	Label  string     `json:"label"`
	Status tui.Status `json:"status"`
	Value  any        `json:"value,omitempty"`
	Error  string     `json:"error,omitempty"`

	err error
}

// Err returns the error held by the node.
func (n NodeReport) Err() error { return n.err }

// Summary describes the value in a few words.
func (n NodeReport) Summary() string {
	if n.Status == StatusFailed {
		return n.Error
	}
	return summarize(n.Value)
}

// Report is the state of every derived node for one view.
type Report struct {
	Kind    domain.ViewKind `json:"kind"`
	Payload string          `json:"payload,omitempty"`
	Nodes   []NodeReport    `json:"nodes"`
}

// Node returns the node whose label is domain.DebugLabel(name).
func (r *Report) Node(name string) (NodeReport, bool) {
	label := domain.DebugLabel(name)
	for _, n := range r.Nodes {
		if n.Label == label {
			return n, true
		}
	}
	return NodeReport{}, false
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode report")
	}
	return pretty.Pretty(data), nil
}

// Status aliases used in reports.
const (
	StatusAbsent   = tui.StatusAbsent
	StatusResolved = tui.StatusResolved
	StatusFailed   = tui.StatusFailed
)

type shownNode struct {
	label string
	node  reactive.Node
	read  func(r *reactive.Reader) (any, error)
}

func nodeOf[T any](d *reactive.Derived[T]) shownNode {
	return shownNode{
		label: d.Label(),
		node:  d,
		read: func(r *reactive.Reader) (any, error) {
			v, err := d.Read(r)
			return v, err
		},
	}
}

// nodes lists every derived node of the state in display order.
func (a *App) nodes(pageSize int) []shownNode {
	s := a.state
	return []shownNode{
		nodeOf(s.TransactionID()),
		nodeOf(s.Transaction()),
		nodeOf(s.TransactionType()),
		nodeOf(s.BlockHash()),
		nodeOf(s.ContractPrincipal()),
		nodeOf(s.Address()),
		nodeOf(s.Block()),
		nodeOf(s.BlockTransactions()),
		nodeOf(s.ContractSource()),
		nodeOf(s.ContractInterface()),
		nodeOf(s.ContractInfo()),
		nodeOf(s.AccountTransactions(pageSize)),
		nodeOf(s.AccountBalances()),
		nodeOf(s.AccountInfo()),
		nodeOf(s.AccountStxBalance()),
	}
}

// snapshot reads every node in one consistent pass. Reading starts the
// fetches of every key the current view needs.
func (a *App) snapshot(pageSize int) *Report {
	shown := a.nodes(pageSize)

	report := &Report{Nodes: make([]NodeReport, 0, len(shown))}
	if v := a.state.View(); v != nil {
		report.Kind = v.Kind()
		report.Payload = v.Payload()
	}

	a.state.Graph().Batch(func(r *reactive.Reader) {
		for _, p := range shown {
			v, err := p.read(r)
			report.Nodes = append(report.Nodes, newNodeReport(p.label, v, err))
		}
	})
	return report
}

func newNodeReport(label string, v any, err error) NodeReport {
	switch {
	case err != nil:
		return NodeReport{Label: label, Status: StatusFailed, Error: err.Error(), err: err}
	case isAbsent(v):
		return NodeReport{Label: label, Status: StatusAbsent}
	default:
		return NodeReport{Label: label, Status: StatusResolved, Value: v}
	}
}

// isAbsent treats zero values as absent. An empty but non-nil slice is a value.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).IsZero()
}

func summarize(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case domain.TxType:
		return string(v)
	case *domain.Transaction:
		s := fmt.Sprintf("%s %s", v.TxType, v.TxStatus)
		if v.Mempool {
			s += " (mempool)"
		}
		return s
	case *domain.Block:
		return fmt.Sprintf("height %d, %d txs", v.Height, len(v.Txs))
	case []*domain.Transaction:
		return fmt.Sprintf("%d transactions", len(v))
	case *domain.ContractSource:
		return fmt.Sprintf("%d lines", strings.Count(v.Source, "\n")+1)
	case *domain.ContractInterface:
		return fmt.Sprintf("%d functions", len(v.Functions))
	case *domain.ContractDetails:
		return fmt.Sprintf("%s at height %d", v.ContractID, v.BlockHeight)
	case *domain.TransactionPages:
		total := 0
		if n := len(v.Pages); n > 0 {
			total = v.Pages[n-1].Total
		}
		return fmt.Sprintf("%d of %d", len(v.Transactions()), total)
	case *domain.AccountBalances:
		return v.Stx.Balance + " µSTX"
	case *domain.AccountInfo:
		return fmt.Sprintf("nonce %d", v.Nonce)
	case *domain.StxBalance:
		return v.Balance + " µSTX"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// detail renders a node value for the inspector.
func detail(n NodeReport) string {
	switch n.Status {
	case StatusFailed:
		return n.Error
	case StatusAbsent:
		return ""
	case StatusResolved:
		data, err := json.Marshal(n.Value)
		if err != nil {
			return fmt.Sprintf("%v", n.Value)
		}
		return string(pretty.Pretty(data))
	default:
		return ""
	}
}
