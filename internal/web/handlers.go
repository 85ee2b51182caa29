package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/delford/twophase-cube/internal/cfen"
	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/storage"
)

// SolveRequest starts a new solve. Scramble and Start are both optional
// move/CFEN strings; an empty Start means "solved cube".
type SolveRequest struct {
	Scramble string `json:"scramble"`
	Start    string `json:"start,omitempty"`
}

// StartSolveResponse is returned immediately after a solve is queued.
type StartSolveResponse struct {
	ID string `json:"id"`
}

// SolveStatusResponse reports a session's current progress or final result.
type SolveStatusResponse struct {
	ID        string  `json:"id"`
	Done      bool    `json:"done"`
	Cancelled bool    `json:"cancelled"`
	Nodes     uint64  `json:"nodes"`
	Depth     int32   `json:"depth"`
	Solution  string  `json:"solution,omitempty"`
	Moves     int     `json:"moves,omitempty"`
	DurationS float64 `json:"duration_seconds,omitempty"`
}

func (s *Server) handleStartSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	c := cube.NewSolved()
	if req.Start != "" {
		state, err := cfen.Parse(req.Start)
		if err != nil {
			http.Error(w, fmt.Sprintf("parsing start CFEN: %v", err), http.StatusBadRequest)
			return
		}
		c, err = state.ToCube()
		if err != nil {
			http.Error(w, fmt.Sprintf("converting start CFEN: %v", err), http.StatusBadRequest)
			return
		}
	}
	if req.Scramble != "" {
		moves, ok := cube.ParseMoves(req.Scramble)
		if !ok {
			http.Error(w, fmt.Sprintf("parsing scramble %q", req.Scramble), http.StatusBadRequest)
			return
		}
		c.ApplyMoves(moves)
	}

	sess := newSession(req.Scramble)

	if s.db != nil {
		repo := storage.NewSolveRepository(s.db)
		if recordID, err := repo.Start(sess.scramble); err == nil {
			sess.recordID = recordID
		}
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	go sess.run(c, s.finishSession)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StartSolveResponse{ID: sess.id})
}

func (s *Server) finishSession(sess *solveSession) {
	s.mu.Lock()
	sess.done = true
	s.mu.Unlock()

	if s.db == nil || sess.recordID == "" {
		return
	}
	repo := storage.NewSolveRepository(s.db)
	_ = repo.Finish(sess.recordID, cube.FormatMoves(sess.solution), int64(sess.progress.Nodes.Load()), sess.duration, sess.cancel.Load())
}

func (s *Server) handleGetSolve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "unknown solve id", http.StatusNotFound)
		return
	}

	resp := SolveStatusResponse{
		ID:        sess.id,
		Nodes:     sess.progress.Nodes.Load(),
		Depth:     sess.progress.Depth.Load(),
		Cancelled: sess.cancel.Load(),
	}

	s.mu.Lock()
	done := sess.done
	s.mu.Unlock()

	if done {
		resp.Done = true
		resp.Solution = cube.FormatMoves(sess.solution)
		resp.Moves = len(sess.solution)
		resp.DurationS = sess.duration.Seconds()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleCancelSolve(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "unknown solve id", http.StatusNotFound)
		return
	}

	sess.cancel.Store(true)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cancelling"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const html = `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a scramble</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        async function poll(id) {
            const resp = await fetch('/api/solve/' + id);
            const status = await resp.json();
            const el = document.getElementById('result');
            if (!status.done) {
                el.innerHTML = '<p>Searching... nodes=' + status.nodes + ' depth=' + status.depth + '</p>';
                setTimeout(() => poll(id), 250);
                return;
            }
            el.innerHTML = '<h3>Solution:</h3><p>' + status.solution + '</p>' +
                '<p><strong>Moves:</strong> ' + status.moves + '</p>' +
                '<p><strong>Time:</strong> ' + status.duration_seconds.toFixed(2) + 's</p>';
        }

        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const el = document.getElementById('result');
            el.style.display = 'block';
            el.innerHTML = '<p>Starting...</p>';
            try {
                const resp = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });
                const started = await resp.json();
                poll(started.id);
            } catch (error) {
                el.innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
