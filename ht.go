package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tobony/ht/supercritical"
)

type Config struct {
	InputPath string  `json:"input"`
	OutputDir string  `json:"output_dir"`
	Methods   string  `json:"methods"`
	Sweep     bool    `json:"sweep"`
	ReMin     float64 `json:"re_min"`
	ReMax     float64 `json:"re_max"`
	N         int     `json:"n"`
	Pr        float64 `json:"pr"`
	LogLevel  string  `json:"log"`
}

func defaultConfig() Config {
	return Config{
		OutputDir: ".",
		Methods:   "all",
		ReMin:     getReMin(),
		ReMax:     getReMax(),
		N:         getSweepPoints(),
		Pr:        getSweepPr(),
		LogLevel:  "ERROR",
	}
}

// infof logs only when the log level is INFO.
func (cfg Config) infof(format string, v ...interface{}) {
	if strings.EqualFold(cfg.LogLevel, "INFO") {
		log.Printf(format, v...)
	}
}

/*
コマンドライン引数から設定を作る。

	-config が指定された場合は JSON ファイルを先に読み込み、
	明示的に指定されたフラグでその値を上書きする。
*/
func parseConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("ht", flag.ContinueOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "設定JSONファイル")
	fs.StringVar(&cfg.InputPath, "input", cfg.InputPath, "計算するケースのCSVファイル")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "出力フォルダ")
	fs.StringVar(&cfg.Methods, "method", cfg.Methods, "相関式の名前 (カンマ区切り) または all")
	fs.BoolVar(&cfg.Sweep, "sweep", cfg.Sweep, "ケースファイルの代わりにレイノルズ数の掃引を行う")
	fs.Float64Var(&cfg.ReMin, "re_min", cfg.ReMin, "掃引の最小レイノルズ数")
	fs.Float64Var(&cfg.ReMax, "re_max", cfg.ReMax, "掃引の最大レイノルズ数")
	fs.IntVar(&cfg.N, "n", cfg.N, "掃引の点数")
	fs.Float64Var(&cfg.Pr, "pr", cfg.Pr, "掃引のプラントル数")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "ログレベル (ERROR or INFO)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configPath != "" {
		explicit := make(map[string]string)
		fs.Visit(func(f *flag.Flag) {
			explicit[f.Name] = f.Value.String()
		})

		file, err := os.Open(configPath)
		if err != nil {
			return cfg, err
		}
		defer file.Close()

		bytes, err := io.ReadAll(file)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(bytes, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", configPath, err)
		}

		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return cfg, err
			}
		}
	}

	if !cfg.Sweep && cfg.InputPath == "" {
		return cfg, errors.New("-input is required unless -sweep is set")
	}
	return cfg, nil
}

// resolveMethods expands "all" and returns the registered spelling of each name.
func resolveMethods(list string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(list), "all") {
		return supercritical.Methods(), nil
	}

	var names []string
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		canonical, err := supercritical.CanonicalName(name)
		if err != nil {
			return nil, err
		}
		names = append(names, canonical)
	}
	if len(names) == 0 {
		return nil, errors.New("no correlation selected")
	}
	return names, nil
}

/*
計算処理の実行

	Args:
		cfg: 設定
	Returns:
		書き出したファイルのパス
*/
func run(cfg Config) ([]string, error) {
	// 出力ディレクトリの作成
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, err
	}

	names, err := resolveMethods(cfg.Methods)
	if err != nil {
		return nil, err
	}

	r := NewRecorder()

	if cfg.Sweep {
		cfg.infof("Sweep Re from %g to %g (%d points) at Pr=%g", cfg.ReMin, cfg.ReMax, cfg.N, cfg.Pr)
		for _, name := range names {
			c, err := supercritical.Lookup(name)
			if err != nil {
				return nil, err
			}
			re, nu, err := supercritical.ReynoldsSweep(c, cfg.ReMin, cfg.ReMax, cfg.N, cfg.Pr)
			if errors.Is(err, supercritical.ErrDomain) {
				// 数値的に破綻した相関式は記録して残りを続ける
				cfg.infof("%s: %v", name, err)
				r.recordSweepFailure(name, err)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			r.recordSweep(name, re, nu)
		}
	} else {
		cfg.infof("Load cases from `%s`", cfg.InputPath)
		rows, err := loadCases(cfg.InputPath)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			cmp, err := supercritical.CompareMethods(names, row.Re, row.Pr, row.options()...)
			if err != nil {
				return nil, err
			}
			for _, res := range cmp.Results {
				if res.Err != nil {
					cfg.infof("%s: %v", row.Name, res.Err)
				}
			}
			r.recordCase(row, cmp)
		}
	}

	paths, err := r.save(cfg.OutputDir)
	for _, p := range paths {
		cfg.infof("Save results to `%s`", p)
	}
	return paths, err
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()

	if _, err := run(cfg); err != nil {
		log.Fatal(err)
	}

	elapsedTime := time.Since(start)
	cfg.infof("elapsed_time: %v", elapsedTime)
}
