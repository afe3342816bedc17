package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"parley/announce"
	"parley/audio"
	"parley/config"
	"parley/engine"
	"parley/gpio"
	"parley/log"
	"parley/shutdown"
)

var version = "dev"

func main() {
	run()
}

func run() {
	configFlag := flag.String("config", "/etc/parley/config.yaml", "appliance config file")
	setupFlag := flag.Bool("setup", false, "Select microphone device interactively (bench use)")
	deviceFlag := flag.String("device", "", "Use named microphone device")
	standaloneFlag := flag.Bool("standalone", false, "Do not power off the host on exit (bench use)")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	crashFlag := flag.Bool("crash", false, "Trigger synthetic panic for testing crash logging")
	profileFlag := flag.String("profile", "", "Enable pprof profiling server (e.g., localhost:6060)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("parley %s\n", version)
		os.Exit(0)
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *profileFlag != "" {
		go func() {
			fmt.Fprintf(os.Stderr, "pprof server listening on http://%s/debug/pprof/\n", *profileFlag)
			if err := http.ListenAndServe(*profileFlag, nil); err != nil {
				fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if *crashFlag {
		panic("TEST CRASH: synthetic panic to verify crash logging")
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Errorf("config error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, err := audio.NewContext()
	if err != nil {
		log.Errorf("audio context init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing audio context: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	deviceName := cfg.Audio.CaptureDevice
	if *deviceFlag != "" {
		deviceName = *deviceFlag
	}
	var selectedDevice *audio.DeviceInfo
	if deviceName != "" {
		if devices, err := ctx.Devices(); err == nil {
			for i := range devices {
				if devices[i].Name == deviceName {
					selectedDevice = &devices[i]
					break
				}
			}
		}
		if selectedDevice == nil {
			log.Warnf("capture device not found: %s, using default", deviceName)
		}
	} else if *setupFlag {
		selectedDevice, err = audio.SelectDevice(ctx)
		if err != nil {
			log.Warnf("device selection failed: %v", err)
			fmt.Printf("Warning: device selection failed: %v\n", err)
			fmt.Println("Falling back to default device")
			selectedDevice = nil
		}
	}

	recorder := audio.NewRecorder(ctx, selectedDevice, audio.CaptureConfig{
		SampleRate: audio.CaptureRate,
		Channels:   audio.CaptureChannels,
	})

	speaker, err := ctx.NewPlayback(audio.PlaybackConfig{SampleRate: audio.SynthRate, Channels: 1})
	if err != nil {
		log.Errorf("playback init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing playback: %v\n", err)
		os.Exit(1)
	}
	defer speaker.Close()

	announceOut, err := ctx.NewPlayback(audio.PlaybackConfig{SampleRate: audio.CaptureRate, Channels: 1})
	if err != nil {
		log.Errorf("announcement playback init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing playback: %v\n", err)
		os.Exit(1)
	}
	defer announceOut.Close()

	ann := announce.NewPlayer(announceOut, announce.Sounds{
		ModeEnglishToSpanish: cfg.Sounds.ModeEnglishToSpanish,
		ModeSpanishToEnglish: cfg.Sounds.ModeSpanishToEnglish,
		NoAudioEnglish:       cfg.Sounds.NoAudioEnglish,
		NoAudioSpanish:       cfg.Sounds.NoAudioSpanish,
		Exit:                 cfg.Sounds.Exit,
	})

	board, err := gpio.Open(gpio.Pins{
		Record:    cfg.Pins.Record,
		Direction: cfg.Pins.Direction,
		Exit:      cfg.Pins.Exit,
		Recording: cfg.Pins.Recording,
		Ready:     cfg.Pins.Ready,
	})
	if err != nil {
		log.Errorf("gpio init error: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing GPIO: %v\n", err)
		os.Exit(1)
	}

	factory := &engine.PathFactory{
		PiperBinary: cfg.Engines.PiperBinary,
		ByDirection: map[engine.Direction]engine.Resources{
			engine.EnglishToSpanish: {
				VoskModel:        cfg.Engines.EnglishToSpanish.VoskModel,
				TranslateCommand: cfg.Engines.EnglishToSpanish.TranslateCommand,
				PiperVoice:       cfg.Engines.EnglishToSpanish.PiperVoice,
				PiperConfig:      cfg.Engines.EnglishToSpanish.PiperConfig,
			},
			engine.SpanishToEnglish: {
				VoskModel:        cfg.Engines.SpanishToEnglish.VoskModel,
				TranslateCommand: cfg.Engines.SpanishToEnglish.TranslateCommand,
				PiperVoice:       cfg.Engines.SpanishToEnglish.PiperVoice,
				PiperConfig:      cfg.Engines.SpanishToEnglish.PiperConfig,
			},
		},
	}

	orch := newOrchestrator(board, board, recorder, speaker, ann,
		engine.NewLoader(factory), engine.NewExecPunctuator(cfg.Engines.PunctuateCommand))
	orch.poll = cfg.PollInterval()
	orch.powerOff = func() { shutdown.PowerOff(*standaloneFlag) }

	if len(cfg.Engines.PunctuateCommand) == 0 {
		log.Warn("no punctuate command configured, passing text through")
	}

	if gate, err := newSpeechGate(); err != nil {
		log.Warnf("VAD unavailable, speech gate disabled: %v", err)
	} else {
		orch.hasSpeech = gate.HasSpeech
	}

	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		log.Warn("interrupt received")
		orch.requestExit()
	}()

	log.SessionStart(version, board.Direction().String())

	if err := orch.Run(); err != nil {
		// Startup-fatal: no usable models for the selected direction.
		log.Errorf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Close()
		os.Exit(1)
	}
	log.Close()
}
