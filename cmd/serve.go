package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/preset"
	"github.com/jsphweid/tunesmith/studio"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

var musicStudio *studio.Studio

var serveFlags struct {
	port        int
	openBrowser bool
}

func init() {
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", constants.FromEnv().Port, "port to listen on")
	serveCmd.Flags().BoolVar(&serveFlags.openBrowser, "open", false, "open a browser once the server is up")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the web interface",
	Long:  `Serves the web interface. Music files are saved in the output folder.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

// LoadStudio sets the studio the handlers use.
func LoadStudio(cfg constants.Config) {
	musicStudio = studio.New(cfg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"function": "writeJSON"}).Error(err)
	}
}

func failure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, model.StatusResponse{Success: false, Message: message})
}

func HandleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Styles        []preset.Style
		DefaultLength int
		MaxLength     int
	}{DefaultLength: constants.DefaultAILength, MaxLength: constants.MaxAILength}
	for _, name := range preset.Names() {
		s, _ := preset.Lookup(name)
		data.Styles = append(data.Styles, s)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		log.WithFields(log.Fields{"function": "HandleIndex"}).Error(err)
	}
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["style"]
	style, err := preset.Lookup(name)
	if err != nil {
		failure(w, "Unknown music type")
		return
	}

	filename, err := musicStudio.GeneratePreset(style.Name)
	if err != nil {
		failure(w, "Error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{
		Success:  true,
		Message:  fmt.Sprintf("%v generated: %v", style.Description, filename),
		Filename: filename,
	})
}

// parseLength falls back to the default for a missing or non-numeric length.
func parseLength(raw string) int {
	length, err := strconv.Atoi(raw)
	if err != nil {
		return constants.DefaultAILength
	}
	return length
}

func HandleGenerateAI(w http.ResponseWriter, r *http.Request) {
	length := parseLength(r.URL.Query().Get("length"))
	if length > constants.MaxAILength {
		failure(w, fmt.Sprintf("Error: length %v is over the limit of %v", length, constants.MaxAILength))
		return
	}

	filename, err := musicStudio.GenerateAI(length)
	if err != nil {
		failure(w, "Error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{
		Success:  true,
		Message:  fmt.Sprintf("AI music generated with %v notes: %v", length, filename),
		Filename: filename,
	})
}

func HandleFiles(w http.ResponseWriter, r *http.Request) {
	files, err := musicStudio.ListFiles()
	if err != nil {
		log.WithFields(log.Fields{"function": "HandleFiles"}).Warn(err)
		files = []string{}
	}
	writeJSON(w, http.StatusOK, files)
}

func HandleDownload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	path, err := musicStudio.Path(name)
	if err == nil {
		var info os.FileInfo
		info, err = os.Stat(path)
		if err == nil && info.IsDir() {
			err = errors.Wrapf(studio.ErrNotFound, "%q", name)
		}
	}
	if err != nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Error: " + err.Error()})
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Type", "audio/midi")
	http.ServeFile(w, r, path)
}

func HandleReload(w http.ResponseWriter, r *http.Request) {
	musicStudio.ReloadCorpus()
	writeJSON(w, http.StatusAccepted, model.StatusResponse{Success: true, Message: "Corpus reload scheduled"})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/", HandleIndex).Methods("GET")
	router.HandleFunc("/generate/ai", HandleGenerateAI).Methods("GET")
	router.HandleFunc("/generate/{style}", HandleGenerate).Methods("GET")
	router.HandleFunc("/files", HandleFiles).Methods("GET")
	router.HandleFunc("/download/{filename}", HandleDownload).Methods("GET")
	router.HandleFunc("/corpus/reload", HandleReload).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() error {
	cfg := constants.FromEnv()
	cfg.Port = serveFlags.port
	LoadStudio(cfg)

	url := fmt.Sprintf("http://127.0.0.1:%v", cfg.Port)
	printTitle("AI Music Generator Web Interface")
	printDim("Music files will be saved in '%v'", cfg.OutputDir)
	printOK("Server running at: %v", url)

	if serveFlags.openBrowser {
		go func() {
			time.Sleep(2 * time.Second)
			if err := browser.OpenURL(url); err != nil {
				log.Warnf("Could not open browser: %v", err)
			}
		}()
	}

	return http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), NewRouter())
}
