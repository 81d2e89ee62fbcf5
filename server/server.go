package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rl-demos/taxi-v3-demo/types"
)

// Simulation owns the single driver behind the web UI. Button handlers and
// the run-to-completion goroutine all funnel through the lock, so only one
// of them touches the driver at a time.
type Simulation struct {
	lock   *sync.Mutex
	driver *types.Driver
	delay  time.Duration

	running bool
	cancel  context.CancelFunc
	runID   int
	message string
}

func NewSimulation(driver *types.Driver, delay time.Duration) *Simulation {
	return &Simulation{
		lock:   new(sync.Mutex),
		driver: driver,
		delay:  delay,
	}
}

type snapshot struct {
	types.EpisodeState
	Frame   string `json:"frame"`
	Running bool   `json:"running"`
	Message string `json:"message"`
}

// callers must hold the lock
func (s *Simulation) snapshot() snapshot {
	return snapshot{
		EpisodeState: s.driver.State(),
		Frame:        s.driver.Render(),
		Running:      s.running,
		Message:      s.message,
	}
}

func (s *Simulation) handleState(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Simulation) handleReset(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.stopRun()
	s.driver.Reset()
	s.message = ""
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Simulation) handleStep(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.stopRun()
	_, err := s.driver.Step()
	if errors.Is(err, types.ErrEpisodeFinished) {
		s.message = "Episode finished. Reset the environment to continue."
	} else {
		s.message = ""
	}
	c.JSON(http.StatusOK, s.snapshot())
}

func (s *Simulation) handleRun(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.running {
		c.JSON(http.StatusOK, s.snapshot())
		return
	}
	// restart a part-way episode rather than resuming it
	if s.driver.State().Steps > 0 {
		s.driver.Reset()
	}
	s.message = ""
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true
	s.runID += 1
	id := s.runID

	go func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		// each transition happens under the lock; the lock is released for
		// the inter-step delay so polling handlers see every frame
		s.driver.Run(ctx, 0, func(episode types.EpisodeState) {
			if episode.Finished() {
				return
			}
			s.lock.Unlock()
			select {
			case <-ctx.Done():
			case <-time.After(s.delay):
			}
			s.lock.Lock()
		})
		// a newer run or an explicit stop already updated the flags
		if s.runID == id {
			s.running = false
			s.cancel = nil
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "running"})
}

func (s *Simulation) handleStop(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.stopRun()
	c.JSON(http.StatusOK, s.snapshot())
}

// callers must hold the lock
func (s *Simulation) stopRun() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.running = false
}

func handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// Router assembles the gin handler for the simulation.
func (s *Simulation) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/", handleIndex)
	r.GET("/state", s.handleState)
	r.POST("/reset", s.handleReset)
	r.POST("/step", s.handleStep)
	r.POST("/run", s.handleRun)
	r.POST("/stop", s.handleStop)
	return r
}

// Serve blocks serving the web UI on the given address.
func (s *Simulation) Serve(addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	fmt.Printf("Serving the taxi demo on http://%s\n", addr)
	return server.ListenAndServe()
}
