package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/gorm-dict/pkg/audit"
	"github.com/doodlesbykumbi/gorm-dict/pkg/dict"
	"github.com/doodlesbykumbi/gorm-dict/pkg/model"
	"github.com/doodlesbykumbi/gorm-dict/pkg/server"
)

// RegisterMemberEndpoints registers the member CRUD endpoints
func RegisterMemberEndpoints(s *server.Server) {
	db := s.DB
	limit := s.Config.PageLimit

	s.Router.HandleFunc("/members", handleListMembers(db, limit)).Methods("GET")
	s.Router.HandleFunc("/members", handleCreateMember(db)).Methods("POST")
	s.Router.HandleFunc("/members/{id}", handleGetMember(db)).Methods("GET")
	s.Router.HandleFunc("/members/{id}", handleUpdateMember(db)).Methods("PUT")
	s.Router.HandleFunc("/members/{id}/keywords", handleMemberKeywords(db)).Methods("GET")
}

// GET /members - List members, optionally filtered by title or role
func handleListMembers(db *gorm.DB, limit int) http.HandlerFunc {
	listMembers := dict.Expose(func(r *http.Request) (any, error) {
		query := db.Model(&model.Member{}).Order("id").Limit(limit)
		if title := r.URL.Query().Get("title"); title != "" {
			query = query.Where("title = ?", title)
		}
		if role := r.URL.Query().Get("role"); role != "" {
			query = query.Where("role = ?", role)
		}
		return query, nil
	})

	return func(w http.ResponseWriter, r *http.Request) {
		result, err := listMembers(r)

		event := audit.MemberListEvent{
			ClientIP: r.RemoteAddr,
			Title:    r.URL.Query().Get("title"),
			Role:     r.URL.Query().Get("role"),
			Success:  err == nil,
		}
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		audit.Log(event)
		respondWithJSON(w, http.StatusOK, result)
	}
}

// GET /members/{id} - Retrieve a single member
func handleGetMember(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, ok := findMember(w, r, db)
		if !ok {
			return
		}

		result, err := dict.Export(member)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		audit.Log(audit.MemberShownEvent{
			MemberID: member.ID,
			ClientIP: r.RemoteAddr,
			Success:  true,
		})
		respondWithJSON(w, http.StatusOK, result)
	}
}

// POST /members - Create a member from a request dictionary
func handleCreateMember(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := decodeMapping(w, r)
		if !ok {
			return
		}

		member := &model.Member{}
		if err := dict.Import(member, data); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		if err := db.Create(member).Error; err != nil {
			audit.Log(audit.MemberCreatedEvent{
				Email:        member.Email,
				ClientIP:     r.RemoteAddr,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		audit.Log(audit.MemberCreatedEvent{
			MemberID: member.ID,
			Email:    member.Email,
			ClientIP: r.RemoteAddr,
			Success:  true,
		})

		result, err := dict.Export(member)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, result)
	}
}

// PUT /members/{id} - Update a member from a request dictionary
func handleUpdateMember(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, ok := findMember(w, r, db)
		if !ok {
			return
		}

		data, ok := decodeMapping(w, r)
		if !ok {
			return
		}

		if err := dict.Import(member, data); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		if err := db.Save(member).Error; err != nil {
			audit.Log(audit.MemberUpdatedEvent{
				MemberID:     member.ID,
				ClientIP:     r.RemoteAddr,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		audit.Log(audit.MemberUpdatedEvent{
			MemberID: member.ID,
			ClientIP: r.RemoteAddr,
			Success:  true,
		})

		result, err := dict.Export(member)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

// GET /members/{id}/keywords - List a member's keywords. The keywords
// relationship is protected on the member itself, so this is the only
// place the API shows it.
func handleMemberKeywords(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := memberID(w, r)
		if !ok {
			return
		}

		member := &model.Member{}
		err := db.Preload("Keywords").First(member, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "member not found")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		result, err := dict.DumpSlice(member.Keywords)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}

func memberID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid member id")
		return 0, false
	}
	return id, true
}

func findMember(w http.ResponseWriter, r *http.Request, db *gorm.DB) (*model.Member, bool) {
	id, ok := memberID(w, r)
	if !ok {
		return nil, false
	}

	member := &model.Member{}
	err := db.First(member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(w, http.StatusNotFound, "member not found")
		return nil, false
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return member, true
}

func decodeMapping(w http.ResponseWriter, r *http.Request) (*dict.Mapping, bool) {
	data := dict.NewMapping()
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed request body")
		return nil, false
	}
	return data, true
}
