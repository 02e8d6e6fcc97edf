package comp

import "github.com/tidewl/tidewl/internal/platform"

func (s *Server) NewOutput(o platform.OutputID) {
	s.outputs[o] = struct{}{}
	s.platform.InitOutput(o)
	s.log.Info("output added", "output", o, "name", s.platform.OutputName(o))
}

func (s *Server) OutputFrame(o platform.OutputID) {
	s.platform.CommitOutput(o)
}

func (s *Server) OutputDestroyed(o platform.OutputID) {
	delete(s.outputs, o)
	s.log.Info("output removed", "output", o)
}
