package rpc

import (
	"net"
	"net/rpc"

	"github.com/Nithin0000007/Rock-paper-scissors/logger"
	"github.com/Nithin0000007/Rock-paper-scissors/models"
	"github.com/Nithin0000007/Rock-paper-scissors/room"
	"github.com/Nithin0000007/Rock-paper-scissors/services"
	"github.com/Nithin0000007/Rock-paper-scissors/session"
)

// Server manages the RPC listener for the admin/ops surface.
type Server struct {
	listener net.Listener
	address  string
}

// NewServer creates a new RPC server.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Check if the error is due to the listener being closed.
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// StatsService exposes live server figures and the leaderboard over net/rpc.
type StatsService struct {
	registry *room.Registry
	sessions *session.Manager
	history  *services.MatchHistoryService
}

func NewStatsService(registry *room.Registry, sessions *session.Manager, history *services.MatchHistoryService) *StatsService {
	return &StatsService{
		registry: registry,
		sessions: sessions,
		history:  history,
	}
}

type ServerStatsArgs struct{}

type ServerStatsReply struct {
	Rooms    int
	Sessions int
}

func (s *StatsService) GetServerStats(args *ServerStatsArgs, reply *ServerStatsReply) error {
	reply.Rooms = s.registry.Count()
	reply.Sessions = s.sessions.Count()
	return nil
}

type TopPlayersArgs struct {
	Limit int
}

type TopPlayersReply struct {
	Standings []models.PlayerStanding
}

func (s *StatsService) TopPlayers(args *TopPlayersArgs, reply *TopPlayersReply) error {
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}
	standings, err := s.history.TopPlayers(limit)
	if err != nil {
		return err
	}
	reply.Standings = standings
	return nil
}
