package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/confsched/slotgrid/internal/domain"
	"github.com/confsched/slotgrid/internal/ports"
)

const (
	configName = "config"
	configType = "toml"

	// ProjectPathKey is the viper key naming the project data file.
	ProjectPathKey    = "project.path"
	projectFileMode   = 0o600
	projectDirMode    = 0o700
	projectConfigDir  = ".slotgrid"
	projectConfigFile = "project.toml"
	tempFilePattern   = ".project-*.toml.tmp"
)

// Repository stores the project data in a single TOML file, resolved
// through the viper config so organizers can point several runs at
// the same dataset.
type Repository struct {
	projectPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProjectRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, projectConfigDir, projectConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, projectConfigDir))
	cfg.SetDefault(ProjectPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	projectPath := cfg.GetString(ProjectPathKey)
	if projectPath == "" {
		return nil, errors.New("project path is empty")
	}
	projectPath, err = normalizeProjectPath(projectPath)
	if err != nil {
		return nil, err
	}

	return &Repository{projectPath: projectPath, mu: lockForPath(projectPath)}, nil
}

func (r *Repository) Load(ctx context.Context) (domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return domain.Project{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Project{}, err
	}

	project := fromSchema(file)
	if err := project.Validate(); err != nil {
		return domain.Project{}, fmt.Errorf("validate project data: %w", err)
	}

	return project, nil
}

func (r *Repository) Save(ctx context.Context, project domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(project))
}

// AssignSession writes one session's assignment back, leaving every
// other record untouched. Each write is independent so a failure does
// not undo or block sibling writes.
func (r *Repository) AssignSession(ctx context.Context, id domain.SessionID, room *domain.RoomID, slot *domain.SlotID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	updated := false
	for i := range file.Sessions {
		if file.Sessions[i].ID != int(id) {
			continue
		}
		file.Sessions[i].Room = ""
		file.Sessions[i].Slot = ""
		if room != nil {
			file.Sessions[i].Room = string(*room)
		}
		if slot != nil {
			file.Sessions[i].Slot = string(*slot)
		}
		updated = true
		break
	}
	if !updated {
		return fmt.Errorf("%w: %d", domain.ErrSessionNotFound, id)
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, r.projectPath)
		}
		return fileSchema{}, fmt.Errorf("read project file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode project file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.projectPath), projectDirMode); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode project file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.projectPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp project file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp project file: %w", err)
	}

	if err := tempFile.Chmod(projectFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp project file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp project file: %w", err)
	}

	if err := os.Rename(tempName, r.projectPath); err != nil {
		return fmt.Errorf("replace project file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.projectPath, projectFileMode); err != nil {
		return fmt.Errorf("chmod project file: %w", err)
	}

	return nil
}

func normalizeProjectPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve project path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
