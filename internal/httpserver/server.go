// internal/httpserver/server.go
//
// HTTP host for the solo Wordle engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", "/stats".
//   - Game endpoints: POST /game/new, GET /game/{id}, POST /game/{id}/action.
//   - Game handles: HS256 JWTs carrying the game ID in a "gid" claim,
//     accepted from the Authorization header or the handle cookie.
//
// Notes:
//   - Every game shares one statistics book; this is a single-player host.
//   - Sessions are ticked to wall-clock time on every request, so panel
//     positions in a snapshot reflect the time since the game started.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solo/internal/game"
	"github.com/robalobadob/wordle/apps/solo/internal/store"
)

const cookieName = "wordle_game"

// Dictionary is the word source plus its size, for diagnostics.
type Dictionary interface {
	game.WordSource
	Stats() (answers, allowed int)
}

// Options configures a Server.
type Options struct {
	Secret       []byte
	TokenTTL     time.Duration
	ClientOrigin string
	Secure       bool // Secure + SameSite=None cookies

	// AllowFixedAnswer honours the "answer" field of POST /game/new (testing).
	AllowFixedAnswer bool

	// Now is the wall clock; defaults to time.Now.
	Now func() time.Time
}

// Server bundles router, session registry, dictionary and statistics book.
type Server struct {
	r     *chi.Mux
	store store.Store
	words Dictionary
	book  game.StatsBook
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, words Dictionary, book game.StatsBook, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, words: words, book: book, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solo","endpoints":["/health","/stats","POST /game/new","GET /game/{id}","POST /game/{id}/action"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(game.StatsSummary(s.book))
	})

	// Game endpoints
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken())
		r.Get("/", s.handleGetGame)
		r.Post("/action", s.handleAction)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer, honoured only with AllowFixedAnswer
}
type newGameRes struct {
	GameID string    `json:"gameId"`
	Token  string    `json:"token"`
	Game   game.View `json:"game"`
}

// handleNewGame creates a session, registers it and hands out its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var opts []game.Option
	if req.Answer != "" && s.opts.AllowFixedAnswer {
		opts = append(opts, game.WithAnswer(req.Answer))
	}
	g, err := game.New(s.words, s.book, opts...)
	if err != nil {
		if errors.Is(err, game.ErrBadAnswer) {
			http.Error(w, `{"error":"bad_answer"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("new game")
		http.Error(w, `{"error":"new_game_failed"}`, http.StatusInternalServerError)
		return
	}
	now := s.opts.Now()
	e, err := s.store.Save(r.Context(), g, now)
	if err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signToken(g.ID, now)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	s.setGameCookie(w, tok, exp)

	var view game.View
	e.Do(now, func(gs *game.Session) { view = gs.Snapshot() })
	log.Info().Str("game", g.ID).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: tok, Game: view})
}

// handleGetGame ticks the session to now and returns its snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	e := entryFrom(r.Context())
	var view game.View
	e.Do(s.opts.Now(), func(gs *game.Session) { view = gs.Snapshot() })
	_ = json.NewEncoder(w).Encode(view)
}

// actionReq/Res payloads for POST /game/{id}/action.
type actionReq struct {
	Type   string  `json:"type"`
	Letter string  `json:"letter"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}
type actionRes struct {
	Verdict game.Verdict `json:"verdict"`
	Game    game.View    `json:"game"`
}

// handleAction decodes one input event and routes it through the session.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	var (
		a     game.Action
		click bool
	)
	switch req.Type {
	case "click":
		click = true
	case "letter":
		if len(req.Letter) != 1 {
			http.Error(w, `{"error":"bad_letter"}`, http.StatusBadRequest)
			return
		}
		a = game.Letter(req.Letter[0])
	default:
		k, ok := game.ParseActionKind(req.Type)
		if !ok || k == game.ActionLetter {
			http.Error(w, `{"error":"bad_action"}`, http.StatusBadRequest)
			return
		}
		a = game.Action{Kind: k}
	}

	var res actionRes
	entryFrom(r.Context()).Do(s.opts.Now(), func(gs *game.Session) {
		if click {
			var ok bool
			if a, ok = gs.Click(req.X, req.Y); !ok {
				res.Verdict = game.VerdictIgnored
				res.Game = gs.Snapshot()
				return
			}
		}
		res.Verdict = gs.Handle(a)
		res.Game = gs.Snapshot()
	})
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------ tokens -------------------------------------

// signToken creates an HS256 JWT bound to one game ID.
func (s *Server) signToken(gameID string, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// parseToken validates a token and returns its game ID.
func (s *Server) parseToken(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.opts.Now),
	)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errors.New("invalid token")
	}
	return gid, nil
}

// setGameCookie writes the handle cookie with appropriate security attributes.
func (s *Server) setGameCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.Secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or handle cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// ---------------------------- game middleware ------------------------------

// ctxEntryKey is the context key type for the resolved session entry.
type ctxEntryKey struct{}

func entryFrom(ctx context.Context) *store.Entry {
	e, _ := ctx.Value(ctxEntryKey{}).(*store.Entry)
	return e
}

// requireGameToken enforces a valid handle for {id} and injects its entry.
func (s *Server) requireGameToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerOrCookie(r)
			if tokenStr == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			gid, err := s.parseToken(tokenStr)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			id := chi.URLParam(r, "id")
			if gid != id {
				http.Error(w, `{"error":"Forbidden"}`, http.StatusForbidden)
				return
			}
			e, err := s.store.Get(r.Context(), id)
			if err != nil {
				http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), ctxEntryKey{}, e)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
