package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/khasmak/api/config"
	"github.com/khasmak/api/models"
	"github.com/khasmak/api/store"
)

// Read-only lookups over the document's per-company reference lists. An
// unknown company key yields an empty list, not an error.

func ContractList(st store.Store, company models.Company) ([]string, error) {
	return companyList(st, company, func(cd *models.CompanyData) []string { return cd.Contracts })
}

func WorkItemList(st store.Store, company models.Company) ([]string, error) {
	return companyList(st, company, func(cd *models.CompanyData) []string { return cd.WorkItems })
}

func ContractorList(st store.Store, company models.Company) ([]string, error) {
	return companyList(st, company, func(cd *models.CompanyData) []string { return cd.Contractors })
}

func companyList(st store.Store, company models.Company, pick func(*models.CompanyData) []string) ([]string, error) {
	db, err := st.Load()
	if err != nil {
		return nil, err
	}
	cd := db.CompanyDataFor(company)
	if cd == nil {
		return []string{}, nil
	}
	list := pick(cd)
	if list == nil {
		return []string{}, nil
	}
	return list, nil
}

func companyFromRequest(r *http.Request) models.Company {
	return models.Company(strings.ToUpper(mux.Vars(r)["company"]))
}

func GetContracts(w http.ResponseWriter, r *http.Request) {
	writeCompanyList(w, r, ContractList)
}

func GetWorkItems(w http.ResponseWriter, r *http.Request) {
	writeCompanyList(w, r, WorkItemList)
}

func GetContractors(w http.ResponseWriter, r *http.Request) {
	writeCompanyList(w, r, ContractorList)
}

func writeCompanyList(w http.ResponseWriter, r *http.Request, fetch func(store.Store, models.Company) ([]string, error)) {
	list, err := fetch(config.DB, companyFromRequest(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
