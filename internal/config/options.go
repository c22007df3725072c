package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix — префикс переменных окружения, например INVADERS_LIVES=5.
const EnvPrefix = "INVADERS_"

// Options хранит настройки матча. Размеры и расстояния в пикселях,
// длительности в миллисекундах, если тип не говорит иного.
type Options struct {
	Width  float64
	Height float64

	StartingSpeed   int     // tick interval at match start, ms
	SpeedMultiplier float64 // fraction shaved off the interval per kill
	RocketSpeed     int     // full-height flight time, ms
	RocketCoolDown  int     // minimum gap between two player shots, ms
	RestartDelay    int     // pause between a won match and the next one, ms
	ExplosionTime   int

	Rows             []int // aliens per row; row index + 1 is the alien type
	AlienHorDistance float64
	AlienVerDistance float64
	AlienHorStep     float64
	AlienVerStep     float64
	EdgeMargin       float64

	ShootingProbability float64
	MaxProjectiles      int
	Lives               int

	CannonSize    float64
	AlienSize     float64
	NumberOfStars int

	Seed int64
}

// DefaultOptions возвращает стандартные настройки игры.
func DefaultOptions() Options {
	return Options{
		Width:               ScreenWidth,
		Height:              ScreenHeight,
		StartingSpeed:       1000,
		SpeedMultiplier:     0.08,
		RocketSpeed:         1600,
		RocketCoolDown:      800,
		RestartDelay:        500,
		ExplosionTime:       400,
		Rows:                []int{5, 5, 5},
		AlienHorDistance:    20,
		AlienVerDistance:    20,
		AlienHorStep:        20,
		AlienVerStep:        30,
		EdgeMargin:          16,
		ShootingProbability: 0.25,
		MaxProjectiles:      4,
		Lives:               3,
		CannonSize:          50,
		AlienSize:           40,
		NumberOfStars:       30,
	}
}

// TickInterval возвращает StartingSpeed как time.Duration.
func (o Options) TickInterval() time.Duration {
	return time.Duration(o.StartingSpeed) * time.Millisecond
}

// ScreenSize возвращает размер поля в целых пикселях; по нему оконный
// фронтенд строит раскладку экрана.
func (o Options) ScreenSize() (int, int) {
	return int(math.Round(o.Width)), int(math.Round(o.Height))
}

// AlienCount возвращает размер нового строя.
func (o Options) AlienCount() int {
	n := 0
	for _, r := range o.Rows {
		n += r
	}
	return n
}

// Validate отклоняет настройки, с которыми матч не может идти.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %vx%v", o.Width, o.Height)
	case o.StartingSpeed <= 0:
		return fmt.Errorf("starting speed must be positive, got %d", o.StartingSpeed)
	case o.RocketSpeed <= 0:
		return fmt.Errorf("rocket speed must be positive, got %d", o.RocketSpeed)
	case o.RocketCoolDown <= 0:
		return fmt.Errorf("rocket cooldown must be positive, got %d", o.RocketCoolDown)
	case o.RestartDelay <= 0:
		return fmt.Errorf("restart delay must be positive, got %d", o.RestartDelay)
	case o.AlienSize <= 0 || o.CannonSize <= 0:
		return fmt.Errorf("sprite sizes must be positive, got alien %v cannon %v", o.AlienSize, o.CannonSize)
	case o.AlienHorStep <= 0 || o.AlienVerStep <= 0:
		return fmt.Errorf("formation steps must be positive, got %vx%v", o.AlienHorStep, o.AlienVerStep)
	case o.SpeedMultiplier <= 0 || o.SpeedMultiplier >= 1:
		return fmt.Errorf("speed multiplier must be in (0, 1), got %v", o.SpeedMultiplier)
	case o.ShootingProbability < 0 || o.ShootingProbability > 1:
		return fmt.Errorf("shooting probability must be in [0, 1], got %v", o.ShootingProbability)
	case o.MaxProjectiles <= 0:
		return fmt.Errorf("max projectiles must be positive, got %d", o.MaxProjectiles)
	case o.Lives <= 0:
		return fmt.Errorf("lives must be positive, got %d", o.Lives)
	case o.AlienCount() == 0:
		return errors.New("formation has no aliens")
	}
	return nil
}

// LoadOptions берёт DefaultOptions, применяет значения из переданных .env
// файлов, затем из окружения процесса (оно главнее). Отсутствующие файлы
// пропускаются.
func LoadOptions(files ...string) (Options, error) {
	values := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Options{}, fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range m {
			values[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			values[k] = v
		}
	}

	o := DefaultOptions()
	if err := o.apply(values); err != nil {
		return Options{}, err
	}
	if err := o.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return o, nil
}

func (o *Options) apply(values map[string]string) error {
	ints := map[string]*int{
		"STARTING_SPEED":  &o.StartingSpeed,
		"ROCKET_SPEED":    &o.RocketSpeed,
		"ROCKET_COOLDOWN": &o.RocketCoolDown,
		"RESTART_DELAY":   &o.RestartDelay,
		"EXPLOSION_TIME":  &o.ExplosionTime,
		"MAX_PROJECTILES": &o.MaxProjectiles,
		"LIVES":           &o.Lives,
		"NUMBER_OF_STARS": &o.NumberOfStars,
	}
	floats := map[string]*float64{
		"WIDTH":                &o.Width,
		"HEIGHT":               &o.Height,
		"SPEED_MULTIPLIER":     &o.SpeedMultiplier,
		"ALIEN_HOR_DISTANCE":   &o.AlienHorDistance,
		"ALIEN_VER_DISTANCE":   &o.AlienVerDistance,
		"ALIEN_HOR_STEP":       &o.AlienHorStep,
		"ALIEN_VER_STEP":       &o.AlienVerStep,
		"EDGE_MARGIN":          &o.EdgeMargin,
		"SHOOTING_PROBABILITY": &o.ShootingProbability,
		"CANNON_SIZE":          &o.CannonSize,
		"ALIEN_SIZE":           &o.AlienSize,
	}

	for name, dst := range ints {
		v, ok := values[EnvPrefix+name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
	}
	for name, dst := range floats {
		v, ok := values[EnvPrefix+name]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = f
	}
	if v, ok := values[EnvPrefix+"SEED"]; ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		o.Seed = seed
	}
	if v, ok := values[EnvPrefix+"ROWS"]; ok {
		rows, err := parseRows(v)
		if err != nil {
			return fmt.Errorf("%sROWS: %w", EnvPrefix, err)
		}
		o.Rows = rows
	}
	return nil
}

// parseRows читает "5,5,5" как []int{5, 5, 5}.
func parseRows(s string) ([]int, error) {
	var rows []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative row size %d", n)
		}
		rows = append(rows, n)
	}
	return rows, nil
}
