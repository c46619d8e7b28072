package server

import (
	"encoding/json"
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Nithin0000007/Rock-paper-scissors/broadcast"
	"github.com/Nithin0000007/Rock-paper-scissors/config"
	"github.com/Nithin0000007/Rock-paper-scissors/game"
	"github.com/Nithin0000007/Rock-paper-scissors/logger"
	"github.com/Nithin0000007/Rock-paper-scissors/monitor"
	"github.com/Nithin0000007/Rock-paper-scissors/network"
	"github.com/Nithin0000007/Rock-paper-scissors/persistence"
	"github.com/Nithin0000007/Rock-paper-scissors/room"
	gameserver_rpc "github.com/Nithin0000007/Rock-paper-scissors/rpc"
	"github.com/Nithin0000007/Rock-paper-scissors/services"
	"github.com/Nithin0000007/Rock-paper-scissors/session"
)

// GameServer is the session gateway: it owns the websocket endpoint,
// translates inbound events into registry calls, and fans the resulting
// events back out to the room.
type GameServer struct {
	addr         string
	upgrader     websocket.Upgrader
	registry     *room.Registry
	sessions     *session.Manager
	broadcaster  broadcast.Broadcaster
	history      *services.MatchHistoryService
	monitor      *monitor.Monitor
	rpcServer    *gameserver_rpc.Server
	shutdownChan chan struct{}
}

func NewGameServer(cfg *config.Config, store persistence.Store, mon *monitor.Monitor) *GameServer {
	s := &GameServer{
		addr:         cfg.Server.HTTPAddress,
		registry:     room.NewRegistry(cfg.Game.MaxRounds),
		sessions:     session.NewManager(),
		history:      services.NewMatchHistoryService(store),
		monitor:      mon,
		shutdownChan: make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	// 初始化广播器
	s.broadcaster = broadcast.NewRoomBroadcaster(s.registry, s.sessions)

	// 初始化RPC服务器
	rpcServer, err := gameserver_rpc.NewServer(cfg.Server.RPCAddress)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	// 注册RPC服务
	statsService := gameserver_rpc.NewStatsService(s.registry, s.sessions, s.history)
	rpc.Register(statsService)

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, nil)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.rpcServer.Stop()
}

// Stats reports live figures for the periodic gauge refresh.
func (s *GameServer) Stats() (rooms, sessions int) {
	return s.registry.Count(), s.sessions.Count()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessions.Add(sess)
	s.monitor.IncOnlinePlayers()

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.monitor.DecOnlinePlayers()
		s.handleDisconnect(sess)
		s.sessions.Remove(sess.GetID())
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			env, err := wsConn.ReadEvent()
			if err != nil {
				return
			}
			s.handleEvent(sess, env)
		}
	}
}

func (s *GameServer) handleEvent(sess *session.Session, env *network.Envelope) {
	start := time.Now()
	s.monitor.IncMessagesReceived()
	defer func() {
		s.monitor.ObserveMessageLatency(time.Since(start))
	}()

	switch env.Event {
	case network.EventPing:
		sess.Touch()
	case network.EventCreateRoom:
		s.handleCreateRoom(sess, env)
	case network.EventJoinRoom:
		s.handleJoinRoom(sess, env)
	case network.EventMakeChoice:
		s.handleMakeChoice(sess, env)
	default:
		logger.Log.Infof("Unknown event type: %q", env.Event)
	}
}

func (s *GameServer) handleCreateRoom(sess *session.Session, env *network.Envelope) {
	var req network.CreateRoomRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		s.sendError(sess, "invalid createRoom payload")
		return
	}

	roomID, snap := s.registry.CreateRoom(req.Name, sess.GetID())
	sess.Name = req.Name
	sess.RoomID = roomID

	logger.Log.Infof("Session %s created room %s", sess.GetID(), roomID)

	sess.Send(network.EventRoomCreated, network.RoomCreatedMessage{RoomID: roomID})
	s.broadcaster.BroadcastToRoom(roomID, network.EventRoomUpdate, snap)
}

func (s *GameServer) handleJoinRoom(sess *session.Session, env *network.Envelope) {
	var req network.JoinRoomRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		s.sendError(sess, "invalid joinRoom payload")
		return
	}

	snap, err := s.registry.JoinRoom(req.RoomID, req.Name, sess.GetID())
	switch err {
	case nil:
	case room.ErrRoomNotFound:
		s.sendError(sess, "Room does not exist")
		return
	case room.ErrRoomFull:
		s.sendError(sess, "Room is full")
		return
	default:
		s.sendError(sess, err.Error())
		return
	}

	sess.Name = req.Name
	sess.RoomID = req.RoomID

	logger.Log.Infof("Session %s joined room %s", sess.GetID(), req.RoomID)

	s.broadcaster.BroadcastToRoom(req.RoomID, network.EventRoomUpdate, snap)
}

func (s *GameServer) handleMakeChoice(sess *session.Session, env *network.Envelope) {
	var req network.MakeChoiceRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		s.sendError(sess, "invalid makeChoice payload")
		return
	}

	choice, ok := game.ParseChoice(req.Choice)
	if !ok {
		s.sendError(sess, "invalid choice")
		return
	}

	out, roomID, ok := s.registry.SubmitChoice(sess.GetID(), choice)
	if !ok {
		// Stale event from a connection with no room; benign race, not an error.
		return
	}

	// Fixed delivery order: roundResult, then gameOver, then the snapshot.
	if out.RoundResult != nil {
		s.monitor.IncRoundsResolved()
		s.broadcaster.BroadcastToRoom(roomID, network.EventRoundResult, out.RoundResult)
	}
	if out.GameOver != nil {
		s.monitor.IncGamesFinished()
		s.broadcaster.BroadcastToRoom(roomID, network.EventGameOver, out.GameOver)
		s.recordMatch(roomID, out)
	}
	s.broadcaster.BroadcastToRoom(roomID, network.EventRoomUpdate, out.Snapshot)
}

// recordMatch writes the finished match to the history store off the event
// path; a write failure never affects the game.
func (s *GameServer) recordMatch(roomID string, out *room.ChoiceOutcome) {
	if !s.history.Enabled() {
		return
	}
	rm, exists := s.registry.GetRoom(roomID)
	if !exists {
		return
	}

	over := out.GameOver
	rounds := out.Snapshot.Round
	startedAt := rm.CreatedAt()
	go func() {
		if err := s.history.RecordMatch(roomID, over, rounds, startedAt); err != nil {
			logger.Log.Warnf("Failed to record match for room %s: %v", roomID, err)
		}
	}()
}

func (s *GameServer) handleDisconnect(sess *session.Session) {
	res, ok := s.registry.RemoveConnection(sess.GetID())
	if !ok {
		// Connection never joined a room; nothing to announce.
		return
	}

	if res.Destroyed {
		logger.Log.Infof("Room %s destroyed after %s left", res.RoomID, sess.Name)
		return
	}

	s.broadcaster.BroadcastToRoom(res.RoomID, network.EventPlayerLeft, res.Snapshot)
}

func (s *GameServer) sendError(sess *session.Session, message string) {
	sess.Send(network.EventError, network.ErrorMessage{Message: message})
}
