package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// KaryawanFilter narrows the employee list.
type KaryawanFilter struct {
	Search         string
	Unit           string
	SumberAnggaran string
}

func (f KaryawanFilter) query(page int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Unit != "" {
		q.Set("unit", f.Unit)
	}
	if f.SumberAnggaran != "" {
		q.Set("sumber_anggaran", f.SumberAnggaran)
	}
	return q
}

// ListKaryawan fetches one page of employees.
func (c *Client) ListKaryawan(ctx context.Context, page int, filter KaryawanFilter) (*KaryawanPage, error) {
	var out KaryawanPage
	if err := c.do(ctx, http.MethodGet, "/karyawan", filter.query(page), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchKaryawan walks every page and returns all matching employees, the
// aggregation the employee picker uses.
func (c *Client) SearchKaryawan(ctx context.Context, filter KaryawanFilter) ([]Karyawan, error) {
	var all []Karyawan
	for page := 1; ; page++ {
		p, err := c.ListKaryawan(ctx, page, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Data...)
		if page >= p.TotalPages {
			break
		}
	}
	return all, nil
}

func (c *Client) GetKaryawan(ctx context.Context, perner string) (*Karyawan, error) {
	var out Karyawan
	if err := c.do(ctx, http.MethodGet, "/karyawan/"+url.PathEscape(perner), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateKaryawan(ctx context.Context, perner string, update KaryawanUpdate) (*Karyawan, error) {
	var out Karyawan
	if err := c.do(ctx, http.MethodPut, "/karyawan/update/"+url.PathEscape(perner), nil, update, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMutasi(ctx context.Context) ([]Mutasi, error) {
	var out struct {
		Data []Mutasi `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/mutasi", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetMutasi(ctx context.Context, perner string) (*Mutasi, error) {
	var out Mutasi
	if err := c.do(ctx, http.MethodGet, "/mutasi/"+url.PathEscape(perner), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMutasi(ctx context.Context, create MutasiCreate) (*Mutasi, error) {
	var out Mutasi
	if err := c.do(ctx, http.MethodPost, "/mutasi", nil, create, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMutasi(ctx context.Context, perner string, update MutasiUpdate) (*Mutasi, error) {
	var out Mutasi
	if err := c.do(ctx, http.MethodPut, "/mutasi/update/"+url.PathEscape(perner), nil, update, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveMutasi settles a pending request in favor of the transfer and
// returns the server's authoritative record.
func (c *Client) ApproveMutasi(ctx context.Context, perner string) (*Mutasi, error) {
	var out Mutasi
	if err := c.do(ctx, http.MethodPost, "/mutasi/"+url.PathEscape(perner)+"/persetujuan", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectMutasi settles a pending request against the transfer. The reason is
// mandatory.
func (c *Client) RejectMutasi(ctx context.Context, perner, alasan string) (*Mutasi, error) {
	body := map[string]string{"alasan_penolakan": alasan}
	var out Mutasi
	if err := c.do(ctx, http.MethodPost, "/mutasi/"+url.PathEscape(perner)+"/penolakan", nil, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMutasi(ctx context.Context, perner string) error {
	return c.do(ctx, http.MethodDelete, "/mutasi/"+url.PathEscape(perner), nil, nil, nil, true)
}

// ListRating fetches the assessment worklist for a month and year, sent on
// the wire as bulan=MM-YYYY.
func (c *Client) ListRating(ctx context.Context, month, year int) ([]KaryawanRating, error) {
	q := url.Values{}
	q.Set("bulan", fmt.Sprintf("%02d-%04d", month, year))

	var out struct {
		Data []KaryawanRating `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/rating", q, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// FilterRating fetches only the rated rows for a period named by the stored
// month name and year.
func (c *Client) FilterRating(ctx context.Context, bulan string, tahun int) ([]KaryawanRating, error) {
	q := url.Values{}
	q.Set("bulan_pemberian", strings.TrimSpace(bulan))
	q.Set("tahun_pemberian", strconv.Itoa(tahun))

	var out struct {
		Data []KaryawanRating `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/rating/filter", q, nil, &out, true); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) SubmitRating(ctx context.Context, perner string, submission RatingSubmission) (*RatingResult, error) {
	var out RatingResult
	if err := c.do(ctx, http.MethodPost, "/rating/"+url.PathEscape(perner), nil, submission, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRating(ctx context.Context, perner string) (*Rating, error) {
	var out Rating
	if err := c.do(ctx, http.MethodGet, "/rating/"+url.PathEscape(perner), nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnitDropdown is public: the mutasi form loads it before any edit.
func (c *Client) UnitDropdown(ctx context.Context) ([]UnitDropdown, error) {
	var out []UnitDropdown
	if err := c.do(ctx, http.MethodGet, "/unit-dropdown", nil, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var out struct {
		DashboardSummary DashboardSummary `json:"dashboardSummary"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out.DashboardSummary, nil
}
