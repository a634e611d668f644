// Package config loads the CLI's TOML configuration through the same
// default+override merge-and-render pipeline the teacher uses for its node
// configuration, trimmed down to the handful of settings a PMST client
// actually needs. The merge/template/cycle-resolution machinery below is
// domain-agnostic — it renders whatever TOML keys it's given — so it is
// kept whole rather than duplicated per settings struct, but every name and
// comment here describes this library's own config loading, not the
// teacher's node configuration it was adapted from.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/plasma-mst/log"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"github.com/valyala/fasttemplate"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagSaveConfigPath is the flag to save the final configuration file.
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "PMST"
	ConfigType         = "toml"
	SaveConfigFileName = "plasma_mst_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)

	templateStartTag = "{{"
	templateEndTag   = "}}"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")
)

// Config is the CLI's ambient configuration: everything the build/prove/verify
// commands need that isn't itself library input (transactions, proofs).
type Config struct {
	// Log configures the zap-backed logger shared by all commands.
	Log log.Config
}

// Load reads and merges the config files named by the FlagCfg flag.
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files: %w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString parses a single already-merged TOML document.
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfigToString serializes cfg as JSON, for diagnostics.
func SaveConfigToString(cfg Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadFile merges the built-in defaults with the given files and decodes
// the result.
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+1)
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := saveConfigPath + "/" + SaveConfigFileName
		if err := os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions); err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBuffer([]byte(configData))); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	return v.Unmarshal(cfg, decodeHooks...)
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		err := k.Load(rawbytes.Provider([]byte(fileData)), koanfjson.Parser())
		if err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		conf := k.Raw()
		tomlData, err := toml.Parser().Marshal(conf)
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}

// FileData is one named config source: a config file's path and its raw
// content, or a synthetic entry like the built-in defaults.
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges a stack of TOML/JSON-turned-TOML sources and resolves
// `{{VAR}}` template references against environment variables first, then
// against the keys of the merged document itself.
type ConfigRender struct {
	// FilesData is ordered lowest-to-highest precedence: later entries
	// override earlier ones.
	FilesData []FileData
	// LookupEnvFunc resolves environment variable overrides; normally
	// os.LookupEnv, swappable in tests.
	LookupEnvFunc func(key string) (string, bool)
	// EnvPrefix is prepended to a dotted config key (with dots turned to
	// underscores) to form the environment variable name that overrides it.
	EnvPrefix string
}

// NewConfigRender builds a ConfigRender over filesData, resolving
// environment overrides under envPrefix via os.LookupEnv.
func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

// Render merges all files and resolves every {{VAR}} reference inside the
// merged document.
func (c *ConfigRender) Render() (string, error) {
	mergedData, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(mergedData)
}

// Merge loads each file as TOML, in order, later files overriding earlier
// keys, and marshals the result back to a single TOML document.
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		dataToml := c.markTemplateVarsAsInts(data.Content)
		err := k.Load(rawbytes.Provider([]byte(dataToml)), toml.Parser())
		if err != nil {
			log.Errorf("error loading file %s. Err:%v.FileData: %v", data.Name, err, dataToml)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return RemoveQuotesForVars(string(marshaled)), nil
}

// ResolveVars fills in every {{VAR}} reference it can from the document
// itself or the environment, then resolves any remaining vars that only
// became resolvable once other vars were filled in (ResolveCycle). It
// returns ErrMissingVars if some vars have no value anywhere, and
// ErrCycleVars if resolution stalls because two or more vars depend on
// each other.
func (c *ConfigRender) ResolveVars(fullConfigData string) (string, error) {
	tpl, valuesDefined, err := c.readTemplateAndDefinedValues(fullConfigData)
	if err != nil {
		return "", err
	}
	rendered := c.executeTemplate(tpl, valuesDefined, true)
	rendered = RemoveTypeMarks(rendered)

	unresolvedVars := c.GetUnresolvedVars(tpl, valuesDefined, true)
	if len(unresolvedVars) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", unresolvedVars, ErrMissingVars)
	}

	finalConfigData, err := c.ResolveCycle(rendered)
	if err != nil {
		return fullConfigData, err
	}
	return finalConfigData, nil
}

// ResolveCycle repeatedly re-resolves vars that only referenced other vars
// (A={{B}}, B={{C}}); each pass must strictly reduce the number of
// remaining vars, or they form a cycle (A={{B}}, B={{A}}) and it fails
// with ErrCycleVars.
func (c *ConfigRender) ResolveCycle(partialResolvedConfigData string) (string, error) {
	tmpData := RemoveQuotesForVars(partialResolvedConfigData)
	pendingVars := c.GetVars(tmpData)
	if len(pendingVars) == 0 {
		return partialResolvedConfigData, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pendingVars)

	previousData := tmpData
	for ok := true; ok; ok = len(pendingVars) > 0 {
		previousVars := pendingVars
		tpl, valuesDefined, err := c.readTemplateAndDefinedValues(previousData)
		if err != nil {
			log.Errorf("resolveCycle: fails readTemplateAndDefinedValues. Err: %v. Data:%s", err, previousData)
			return "", fmt.Errorf("fails to read template ResolveCycle. Err: %w", err)
		}
		rendered := c.executeTemplate(tpl, valuesDefined, true)
		tmpData = RemoveTypeMarks(RemoveQuotesForVars(rendered))

		pendingVars = c.GetVars(tmpData)
		if len(pendingVars) == len(previousVars) {
			return partialResolvedConfigData, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pendingVars, ErrCycleVars)
		}
		previousData = tmpData
	}
	return previousData, nil
}

// readTemplateAndDefinedValues parses data as a {{VAR}} template and reads
// its already-defined keys as a TOML document. The variables in data must
// be written unquoted, A={{B}} not A="{{B}}".
func (c *ConfigRender) readTemplateAndDefinedValues(data string) (*fasttemplate.Template,
	map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, templateStartTag, templateEndTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template readTemplateAndDefinedValues. Err:%w", err)
	}
	marked := c.markTemplateVarsAsInts(data)
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(marked)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error readTemplateAndDefinedValues parsing"+
			" data koanf.Load.Content: %s.  Err: %w", marked, err)
	}
	return tpl, k.All(), nil
}

// markTemplateVarsAsInts quotes and tags a bare `key={{VAR}}` reference as
// `key="{{VAR:int}}"` so the TOML parser accepts it as a string before
// template resolution runs; RemoveQuotesForVars/RemoveTypeMarks undo this
// once the surrounding document has been parsed.
func (c *ConfigRender) markTemplateVarsAsInts(data string) string {
	re := regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	return re.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

// RemoveQuotesForVars strips the quoting markTemplateVarsAsInts added
// around a still-unresolved `{{VAR:int}}` reference.
func RemoveQuotesForVars(data string) string {
	re := regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	return re.ReplaceAllStringFunc(data, func(match string) string {
		submatch := re.FindStringSubmatch(match)
		if len(submatch) > 1 {
			parts := strings.Split(submatch[1], ":")
			return "= {{" + parts[0] + "}}"
		}
		return match
	})
}

// RemoveTypeMarks strips the `:int` tag markTemplateVarsAsInts added to a
// still-unresolved `{{VAR:int}}` reference, leaving plain `{{VAR}}`.
func RemoveTypeMarks(data string) string {
	re := regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
	return re.ReplaceAllStringFunc(data, func(match string) string {
		submatch := re.FindStringSubmatch(match)
		if len(submatch) > 1 {
			parts := strings.Split(submatch[1], ":")
			return "{{" + parts[0] + "}}"
		}
		return match
	})
}

func (c *ConfigRender) executeTemplate(tpl *fasttemplate.Template,
	data map[string]interface{},
	useEnv bool) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if useEnv {
			if v, ok := c.findTagInEnvironment(tag); ok {
				return w.Write([]byte(fmt.Sprintf("%v", v)))
			}
		}
		if v, ok := data[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(composeVarKeyForTemplate(tag)))
	})
}

// GetUnresolvedVars returns the template vars in tpl that have no value in
// data and, when useEnv is set, none in the environment either.
func (c *ConfigRender) GetUnresolvedVars(tpl *fasttemplate.Template,
	data map[string]interface{}, useEnv bool) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if useEnv {
			if v, ok := c.findTagInEnvironment(tag); ok {
				return w.Write([]byte(v))
			}
		}
		if _, ok := data[tag]; !ok {
			if !contains(unresolved, tag) {
				unresolved = append(unresolved, tag)
			}
		}
		return w.Write([]byte(""))
	})
	return unresolved
}

// GetVars returns every {{VAR}} reference still present in configData.
func (c *ConfigRender) GetVars(configData string) []string {
	tpl, err := fasttemplate.NewTemplate(configData, templateStartTag, templateEndTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return w.Write([]byte(""))
	})
	return vars
}

func (c *ConfigRender) findTagInEnvironment(tag string) (string, bool) {
	envTag := c.composeVarKeyForEnvironment(tag)
	if v, ok := c.LookupEnvFunc(envTag); ok {
		return v, true
	}
	return "", false
}

func (c *ConfigRender) composeVarKeyForEnvironment(key string) string {
	return c.EnvPrefix + "_" + strings.ReplaceAll(key, ".", "_")
}

func composeVarKeyForTemplate(key string) string {
	return templateStartTag + key + templateEndTag
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}
