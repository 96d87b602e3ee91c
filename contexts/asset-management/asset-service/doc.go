// Package assetservice contains the Assetverse implementation of company
// asset management: HR-owned inventory, employee asset requests, team
// affiliation and package-limit upgrades paid through hosted checkout.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package assetservice
